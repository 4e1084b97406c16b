package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	opts, err := deps.History.FindOptimizations(deps.Ctx, jobtailor.OptimizationFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	if len(opts) == 0 {
		fmt.Fprintln(deps.Stdout, "No optimizations recorded yet.")
		return nil
	}

	for _, opt := range opts {
		fmt.Fprintf(deps.Stdout, "%s  %-9s  %s\n", opt.CreatedAt.Format("2006-01-02 15:04"), opt.Method, opt.JobURL)
	}

	return nil
}
