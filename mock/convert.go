package mock

import "github.com/mwierzba/wikiread"

var _ wikiread.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikiread.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
