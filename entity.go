package docsmcp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namedEntities maps the character references documentation pages actually
// use. Pilcrow and section signs are heading permalink glyphs and decode to
// nothing.
var namedEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": `"`,
	"apos": "'",
	"nbsp": " ",
	"para": "",
	"sect": "",
}

var entityRe = regexp.MustCompile(`&(#[0-9]{1,8}|#[xX][0-9a-fA-F]{1,6}|[a-zA-Z]+);`)

// DecodeEntities replaces known named references and valid numeric
// references with their literal characters in a single pass. Unknown names
// and malformed numeric references are left untouched.
//
// Callers must strip markup first: a decoded "<" is text, not a tag.
func DecodeEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}
	return entityRe.ReplaceAllStringFunc(text, func(ref string) string {
		body := ref[1 : len(ref)-1]
		if body[0] != '#' {
			if s, ok := namedEntities[body]; ok {
				return s
			}
			return ref
		}

		var n uint64
		var err error
		if body[1] == 'x' || body[1] == 'X' {
			n, err = strconv.ParseUint(body[2:], 16, 32)
		} else {
			n, err = strconv.ParseUint(body[1:], 10, 32)
		}
		if err != nil || n == 0 {
			return ref
		}
		r := rune(n)
		if !utf8.ValidRune(r) {
			return ref
		}
		if r == '\u00a0' {
			return " "
		}
		return string(r)
	})
}
