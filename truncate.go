package docsmcp

import (
	"strings"
	"unicode/utf8"
)

// MaxContentLength bounds every page body returned to a caller, in runes.
const MaxContentLength = 15_000

// TruncationMarker is appended to content cut for length. The caller's
// output always carries the page URL, which is where the full text lives.
const TruncationMarker = "\n\n... [Content truncated. Visit the URL for full content.]"

// Truncate bounds text to maxLen runes. Text that fits is returned as is.
// Longer text is cut at the last paragraph break within the budget, or at
// exactly maxLen runes when there is none. Trailing newlines are dropped
// before TruncationMarker is appended. The boolean reports whether a cut happened.
func Truncate(text string, maxLen int) (string, bool) {
	if maxLen < 0 {
		maxLen = 0
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text, false
	}

	// Byte offset of the maxLen-th rune; never splits a multi-byte sequence.
	cut := len(text)
	n := 0
	for i := range text {
		if n == maxLen {
			cut = i
			break
		}
		n++
	}

	// A break starting at the last rune of the budget still counts, so the
	// window reaches one byte past the cut.
	window := text[:min(cut+1, len(text))]
	head := text[:cut]
	if i := strings.LastIndex(window, "\n\n"); i > 0 {
		head = text[:i]
	}
	return strings.TrimRight(head, "\n") + TruncationMarker, true
}
