package mock

import "github.com/fwojciec/jobtailor"

var _ jobtailor.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobtailor.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
