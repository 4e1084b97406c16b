package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/bloom"
	"github.com/fwojciec/jobtailor/goquery"
	"golang.org/x/sync/errgroup"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.Sitemap != "" {
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, jobtailor.JobPostingFilter())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
			return err
		}
		urls = append(urls, discovered...)
	}
	if len(urls) == 0 {
		return jobtailor.Errorf(jobtailor.EINVALID, "no URLs to check; pass URLs or --sitemap")
	}

	// The same posting can appear under several sitemap entries.
	seen := bloom.NewFilter(uint(len(urls)), 0.001)
	var unique []string
	for _, u := range urls {
		if !seen.TestAndAdd(u) {
			unique = append(unique, u)
		}
	}

	type result struct {
		classification *jobtailor.Classification
		err            error
	}
	results := make([]result, len(unique))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, u := range unique {
		g.Go(func() error {
			if deps.Limiter != nil {
				if err := deps.Limiter.Wait(ctx, u); err != nil {
					return err
				}
			}

			html, err := deps.Fetcher.Fetch(ctx, u)
			if err != nil {
				results[i] = result{err: err}
				return nil
			}
			signal, err := goquery.Snapshot(u, html)
			if err != nil {
				results[i] = result{err: err}
				return nil
			}
			classification, err := deps.Classifier.Classify(signal)
			results[i] = result{classification: classification, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobtailor.ErrorMessage(err))
		return err
	}

	found := 0
	for i, u := range unique {
		r := results[i]
		if r.err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", u, jobtailor.ErrorMessage(r.err))
			continue
		}
		if r.classification.IsJobPage {
			found++
			fmt.Fprintf(deps.Stdout, "job  %s  (%s)\n", u, joinSignals(r.classification.Matched))
		} else {
			fmt.Fprintf(deps.Stdout, "-    %s\n", u)
		}
	}
	fmt.Fprintf(deps.Stdout, "%d of %d pages look like job postings\n", found, len(unique))

	return nil
}

func joinSignals(signals []jobtailor.Signal) string {
	names := make([]string, len(signals))
	for i, s := range signals {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
