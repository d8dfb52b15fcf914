package mock

import "github.com/fwojciec/docsmcp"

var _ docsmcp.Suggester = (*Suggester)(nil)

// Suggester is a mock implementation of docsmcp.Suggester.
type Suggester struct {
	SuggestFn func(query string, candidates []string, n int) []string
}

func (s *Suggester) Suggest(query string, candidates []string, n int) []string {
	return s.SuggestFn(query, candidates, n)
}
