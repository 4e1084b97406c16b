package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	DB     *sqlite.DB

	Classifier    jobtailor.Classifier
	Extractor     jobtailor.Extractor
	Converter     jobtailor.Converter
	Optimizer     jobtailor.Optimizer
	Fetcher       jobtailor.Fetcher
	Limiter       jobtailor.DomainLimiter
	Sitemaps      jobtailor.SitemapService
	Templates     jobtailor.TemplateService
	Registrations jobtailor.RegistrationService
	Settings      jobtailor.SettingsService
	Stats         jobtailor.StatsService
	History       jobtailor.HistoryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Detect   DetectCmd   `cmd:"" help:"Check whether pages are job postings"`
	Extract  ExtractCmd  `cmd:"" help:"Extract the job description from a posting page"`
	Tailor   TailorCmd   `cmd:"" help:"Tailor the stored resume template to a job posting"`
	Template TemplateCmd `cmd:"" help:"Manage the master resume template"`
	Settings SettingsCmd `cmd:"" help:"Show or change settings"`
	Stats    StatsCmd    `cmd:"" help:"Show or reset usage statistics"`
	History  HistoryCmd  `cmd:"" help:"List past optimizations"`
	Host     HostCmd     `cmd:"" help:"Serve the native-messaging protocol on stdio"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	URLs        []string `arg:"" optional:"" help:"Page URLs to check"`
	Sitemap     string   `short:"s" help:"Discover candidate URLs from this site's sitemap"`
	Render      bool     `short:"r" help:"Render pages in a headless browser"`
	RPS         float64  `default:"1" help:"Requests per second per domain"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Posting page URL"`
	Render   bool   `short:"r" help:"Render the page in a headless browser"`
	Markdown bool   `short:"m" help:"Convert the extracted region to Markdown"`
}

// TailorCmd is the "tailor" subcommand.
type TailorCmd struct {
	URL    string `arg:"" help:"Posting page URL"`
	Render bool   `short:"r" help:"Render the page in a headless browser"`
	Out    string `short:"o" help:"Output file (defaults to tailored_resume_YYYY-MM-DD.tex)"`
}

// TemplateCmd groups template management subcommands.
type TemplateCmd struct {
	Show TemplateShowCmd `cmd:"" help:"Print the stored template"`
	Set  TemplateSetCmd  `cmd:"" help:"Replace the stored template from a file"`
}

// TemplateShowCmd prints the stored template.
type TemplateShowCmd struct{}

// TemplateSetCmd replaces the stored template.
type TemplateSetCmd struct {
	Path string `arg:"" help:"Path to a LaTeX resume file"`
}

// SettingsCmd groups settings subcommands.
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Print current settings"`
	Set  SettingsSetCmd  `cmd:"" help:"Set a raw settings value"`
}

// SettingsShowCmd prints current settings.
type SettingsShowCmd struct{}

// SettingsSetCmd sets one raw settings value.
type SettingsSetCmd struct {
	Scope string `arg:"" enum:"sync,local" help:"Settings scope (sync or local)"`
	Key   string `arg:"" help:"Setting key"`
	Value string `arg:"" help:"Setting value"`
}

// StatsCmd groups stats subcommands.
type StatsCmd struct {
	Show  StatsShowCmd  `cmd:"" default:"1" help:"Print usage statistics"`
	Reset StatsResetCmd `cmd:"" help:"Zero all usage counters"`
}

// StatsShowCmd prints usage statistics.
type StatsShowCmd struct{}

// StatsResetCmd zeroes usage counters.
type StatsResetCmd struct{}

// HistoryCmd lists past optimizations.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum records to show"`
}

// HostCmd serves the native-messaging protocol on stdio.
type HostCmd struct{}
