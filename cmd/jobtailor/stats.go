package main

import (
	"fmt"

	"github.com/fwojciec/jobtailor"
)

// Run executes the "stats show" command.
func (c *StatsShowCmd) Run(deps *Dependencies) error {
	stats, err := deps.Stats.Get(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	if stats.TotalOptimizations == 0 {
		fmt.Fprintln(deps.Stdout, "No optimizations recorded yet.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "optimizations   %d\n", stats.TotalOptimizations)
	fmt.Fprintf(deps.Stdout, "efficient runs  %d (%.0f%%)\n", stats.EfficientOptimizations, stats.EfficiencyRate()*100)
	fmt.Fprintf(deps.Stdout, "tokens saved    %d\n", stats.TokensSaved)
	fmt.Fprintf(deps.Stdout, "first used      %s\n", stats.FirstUsed.Format("2006-01-02"))
	fmt.Fprintf(deps.Stdout, "last used       %s\n", stats.LastUsed.Format("2006-01-02"))
	return nil
}

// Run executes the "stats reset" command.
func (c *StatsResetCmd) Run(deps *Dependencies) error {
	if err := deps.Stats.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Usage statistics reset.")
	return nil
}
