package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/jobtailor"
	main "github.com/fwojciec/jobtailor/cmd/jobtailor"
	"github.com/fwojciec/jobtailor/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html><head><title>Senior Go Engineer - Careers</title></head>
<body><p>Responsibilities: build services. Requirements: 5+ years of experience.</p></body></html>`

func TestDetectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("classifies listed URLs", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return jobPageHTML, nil
			},
		}
		classifier := &mock.Classifier{
			ClassifyFn: func(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
				return &jobtailor.Classification{
					IsJobPage: true,
					Matched:   []jobtailor.Signal{jobtailor.SignalURL},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Fetcher:    fetcher,
			Classifier: classifier,
		}

		cmd := &main.DetectCmd{
			URLs:        []string{"https://example.com/careers/sre"},
			Concurrency: 2,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "https://example.com/careers/sre")
		assert.Contains(t, output, "url")
		assert.Contains(t, output, "1 of 1 pages look like job postings")
	})

	t.Run("deduplicates repeated URLs", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetches++
				return jobPageHTML, nil
			},
		}
		classifier := &mock.Classifier{
			ClassifyFn: func(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
				return &jobtailor.Classification{IsJobPage: false}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    fetcher,
			Classifier: classifier,
		}

		cmd := &main.DetectCmd{
			URLs: []string{
				"https://example.com/careers/sre",
				"https://example.com/careers/sre",
			},
			Concurrency: 1,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Equal(t, 1, fetches)
	})

	t.Run("discovers URLs from sitemap", func(t *testing.T) {
		t.Parallel()

		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, filter *jobtailor.URLFilter) ([]string, error) {
				assert.Equal(t, "https://example.com", baseURL)
				require.NotNil(t, filter)
				return []string{"https://example.com/careers/sre"}, nil
			},
		}
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return jobPageHTML, nil
			},
		}
		classifier := &mock.Classifier{
			ClassifyFn: func(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
				return &jobtailor.Classification{IsJobPage: true, Matched: []jobtailor.Signal{jobtailor.SignalKnownSite}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    fetcher,
			Classifier: classifier,
			Sitemaps:   sitemaps,
		}

		cmd := &main.DetectCmd{Sitemap: "https://example.com", Concurrency: 2}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "https://example.com/careers/sre")
	})

	t.Run("reports fetch failures without aborting the batch", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://example.com/careers/broken" {
					return "", errors.New("HTTP 500")
				}
				return jobPageHTML, nil
			},
		}
		classifier := &mock.Classifier{
			ClassifyFn: func(signal *jobtailor.PageSignal) (*jobtailor.Classification, error) {
				return &jobtailor.Classification{IsJobPage: true, Matched: []jobtailor.Signal{jobtailor.SignalURL}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     stderr,
			Fetcher:    fetcher,
			Classifier: classifier,
		}

		cmd := &main.DetectCmd{
			URLs: []string{
				"https://example.com/careers/broken",
				"https://example.com/careers/sre",
			},
			Concurrency: 1,
		}

		err := cmd.Run(deps)
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip https://example.com/careers/broken")
		assert.Contains(t, stdout.String(), "1 of 2 pages look like job postings")
	})

	t.Run("requires URLs or a sitemap", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.DetectCmd{Concurrency: 1}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, jobtailor.EINVALID, jobtailor.ErrorCode(err))
	})
}
