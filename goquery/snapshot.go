package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobtailor"
)

// Snapshot parses HTML once and builds the immutable page signal the
// classifier reads. Title comes from the <title> element; BodyText is the
// page's visible text with chrome elements stripped.
func Snapshot(url, html string) (*jobtailor.PageSignal, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "failed to parse HTML: %v", err)
	}

	signal := &jobtailor.PageSignal{
		URL:   url,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		HTML:  html,
	}

	if body := doc.Find("body"); body.Length() > 0 {
		signal.BodyText = cleanText(body)
	}

	if err := signal.Validate(); err != nil {
		return nil, err
	}
	return signal, nil
}
