package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	extraction, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	if jobtailor.IsNoJobContent(extraction.Text) {
		fmt.Fprintln(deps.Stderr, extraction.Text)
		return jobtailor.Errorf(jobtailor.ENOTFOUND, "no job description found at %s", c.URL)
	}

	output := extraction.Text
	if c.Markdown && extraction.HTML != "" {
		markdown, err := deps.Converter.Convert(extraction.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
			return err
		}
		output = markdown
	}

	fmt.Fprintln(deps.Stdout, output)
	fmt.Fprintf(deps.Stderr, "strategy=%s score=%.1f\n", extraction.Strategy, extraction.Score)

	return nil
}
