package mock

import "github.com/fwojciec/jobtailor"

var _ jobtailor.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of jobtailor.Classifier.
type Classifier struct {
	ClassifyFn func(signal *jobtailor.PageSignal) (*jobtailor.Classification, error)
}

func (c *Classifier) Classify(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
	return c.ClassifyFn(signal)
}
