package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/jobtailor"
)

// Run executes the tailor command.
func (c *TailorCmd) Run(deps *Dependencies) error {
	template, err := deps.Templates.GetCurrent(deps.Ctx)
	if err != nil {
		if jobtailor.ErrorCode(err) == jobtailor.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No template saved. Use 'jobtailor template set <file>' first.")
		}
		return err
	}

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

	result, err := deps.Optimizer.Optimize(deps.Ctx, extraction.Text, template.Content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	// Bookkeeping failures don't void the tailored resume.
	if status, err := deps.Registrations.Status(deps.Ctx, template.Hash); err == nil && status.NeedsRegistration {
		_ = deps.Registrations.Register(deps.Ctx, template.Hash)
	}
	_ = deps.Stats.Record(deps.Ctx, result.Method == jobtailor.MethodEfficient)
	_ = deps.History.CreateOptimization(deps.Ctx, &jobtailor.Optimization{
		JobURL:   c.URL,
		Score:    extraction.Score,
		Strategy: extraction.Strategy,
		Method:   result.Method,
	})

	out := c.Out
	if out == "" {
		out = fmt.Sprintf("tailored_resume_%s.tex", time.Now().Format("2006-01-02"))
	}
	if err := os.WriteFile(out, []byte(result.Resume), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (method: %s)\n", out, result.Method)
	return nil
}
