package mock

import "github.com/fwojciec/docsmcp"

var _ docsmcp.Converter = (*Converter)(nil)

// Converter is a mock implementation of docsmcp.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
