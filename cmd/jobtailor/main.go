package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobtailor"
	"github.com/fwojciec/jobtailor/anthropic"
	"github.com/fwojciec/jobtailor/gemini"
	"github.com/fwojciec/jobtailor/goquery"
	"github.com/fwojciec/jobtailor/htmltomarkdown"
	jthttp "github.com/fwojciec/jobtailor/http"
	"github.com/fwojciec/jobtailor/readability"
	"github.com/fwojciec/jobtailor/rod"
	jtslog "github.com/fwojciec/jobtailor/slog"
	"github.com/fwojciec/jobtailor/sqlite"
	"github.com/fwojciec/jobtailor/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobtailor"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobtailor --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set JOBTAILOR_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Templates = sqlite.NewTemplateService(m.DB)
	deps.Registrations = sqlite.NewRegistrationService(m.DB)
	deps.Settings = sqlite.NewSettingsService(m.DB)
	deps.Stats = sqlite.NewStatsService(m.DB)
	deps.History = sqlite.NewHistoryService(m.DB)
	deps.Sitemaps = jthttp.NewSitemapService(nil)
	deps.Converter = htmltomarkdown.NewConverter()

	settings, err := deps.Settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	deps.Classifier = jtslog.NewLoggingClassifier(goquery.NewClassifier(
		goquery.WithKeywordFloor(settings.KeywordFloor),
		goquery.WithStructureFloor(settings.StructureFloor),
		goquery.WithElementFloor(settings.ElementFloor),
	), deps.Logger)
	deps.Extractor = jtslog.NewLoggingExtractor(goquery.NewExtractor(
		goquery.WithArticleExtractor(jobtailor.ArticleExtractors{
			readability.NewExtractor(),
			trafilatura.NewExtractor(),
		}),
	), deps.Logger)

	if needsFetcher(cmd) {
		fetcher, err := newFetcher(cli, cmd)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return err
		}
		defer fetcher.Close()
		deps.Fetcher = jtslog.NewLoggingFetcher(fetcher, deps.Logger)
	}
	if cmd == "detect" {
		deps.Limiter = jthttp.NewDomainLimiter(cli.Detect.RPS)
	}

	if cmd == "tailor" || cmd == "host" {
		optimizer, err := newOptimizer(ctx, settings)
		if err != nil {
			// The host still answers detection and settings requests
			// without an API key; tailoring requires one.
			if cmd != "host" {
				fmt.Fprintln(stderr, "Hint: Set ANTHROPIC_API_KEY or GEMINI_API_KEY, or save an API key with 'jobtailor settings set sync apiKey ...'")
				return err
			}
		} else {
			deps.Optimizer = jtslog.NewLoggingOptimizer(optimizer, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func needsFetcher(cmd string) bool {
	return cmd == "detect" || cmd == "extract" || cmd == "tailor"
}

// newFetcher picks the browser-based fetcher when the command's --render
// flag is set, the plain HTTP fetcher otherwise.
func newFetcher(cli *CLI, cmd string) (jobtailor.Fetcher, error) {
	render := false
	switch cmd {
	case "detect":
		render = cli.Detect.Render
	case "extract":
		render = cli.Extract.Render
	case "tailor":
		render = cli.Tailor.Render
	}

	if render {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}
	return jthttp.NewFetcher(), nil
}

// newOptimizer builds the LLM client for the configured provider. The
// environment variable wins over the stored API key.
func newOptimizer(ctx context.Context, settings *jobtailor.Settings) (jobtailor.Optimizer, error) {
	switch settings.Provider {
	case jobtailor.ProviderGemini:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			apiKey = settings.APIKey
		}
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewOptimizer(client), nil
	default:
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			apiKey = settings.APIKey
		}
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set. Get a key at https://console.anthropic.com")
		}
		return anthropic.NewOptimizer(apiKey), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("JOBTAILOR_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobtailor.db"
	}
	dir := filepath.Join(home, ".jobtailor")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobtailor.db")
}
