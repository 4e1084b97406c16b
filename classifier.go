package jobtailor

// PageSignal is an immutable snapshot of the page surface the classifier
// reads. URL, Title, and BodyText are matched case-insensitively; HTML is
// the raw document for structural analysis.
type PageSignal struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	BodyText string `json:"bodyText"`
	HTML     string `json:"html"`
}

// Validate returns an error if the signal is unusable for classification.
func (s *PageSignal) Validate() error {
	if s.URL == "" && s.Title == "" && s.BodyText == "" && s.HTML == "" {
		return Errorf(EINVALID, "page signal requires at least one of url, title, body text, or html")
	}
	return nil
}

// Signal identifies which detection layer matched during classification.
type Signal string

// Signal constants, one per classifier layer.
const (
	SignalURL       Signal = "url"
	SignalTitle     Signal = "title"
	SignalKeywords  Signal = "keywords"
	SignalStructure Signal = "structure"
	SignalElements  Signal = "elements"
	SignalKnownSite Signal = "known_site"
)

// Classification is the result of a classifier pass. Matched lists every
// layer that fired, in evaluation order; IsJobPage is true if any layer
// fired.
type Classification struct {
	IsJobPage bool     `json:"isJobPage"`
	Matched   []Signal `json:"matched"`
}

// Classifier decides whether a page is a job posting. The decision is
// disjunctive: any single matching layer classifies the page positive.
// Over-triggering is acceptable; the downstream cost of a false positive
// is low.
type Classifier interface {
	Classify(signal *PageSignal) (*Classification, error)
}
