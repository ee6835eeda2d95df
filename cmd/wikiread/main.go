package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mwierzba/wikiread"
	"github.com/mwierzba/wikiread/fetch"
	"github.com/mwierzba/wikiread/fs"
	"github.com/mwierzba/wikiread/gemini"
	"github.com/mwierzba/wikiread/gocache"
	"github.com/mwierzba/wikiread/goquery"
	"github.com/mwierzba/wikiread/htmltomarkdown"
	wikihttp "github.com/mwierzba/wikiread/http"
	wikislog "github.com/mwierzba/wikiread/slog"
	"github.com/mwierzba/wikiread/sqlite"
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

	// Wikipedia language code for API requests.
	Language string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ArticleService wikiread.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		Language: defaultLanguage(),
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
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikiread"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikiread --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIKIREAD_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := newLogger(stderr, cli.Verbose)

	// Wire core services into dependencies
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	client := wikihttp.NewClient(wikihttp.WithLanguage(m.Language))
	summaries := gocache.NewSummaryCache(wikislog.NewSummaryService(client, logger), gocache.DefaultTTL)
	pages := gocache.NewPageCache(wikislog.NewPageService(client, logger), gocache.DefaultTTL)
	htmlParser := goquery.NewParser()

	deps.Searcher = client
	deps.Pages = pages
	deps.Extractor = htmlParser
	deps.Fetcher = &fetch.Assembler{
		Summaries: summaries,
		Pages:     pages,
		Parser:    wikislog.NewSectionParser(htmlParser, logger),
	}

	if cmd == "export" {
		deps.Converter = htmltomarkdown.NewConverter()
		deps.Writer = fs.NewWriter(cli.Export.Dir)
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(genaiClient, m.ArticleService)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a logger for service decorators. Without --verbose only
// warnings and errors reach stderr.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("WIKIREAD_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wikiread.db"
	}
	dir := filepath.Join(home, ".wikiread")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wikiread.db")
}

func defaultLanguage() string {
	if lang := os.Getenv("WIKIREAD_LANG"); lang != "" {
		return lang
	}
	return "en"
}
