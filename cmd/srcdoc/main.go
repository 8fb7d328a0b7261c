package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/srcdoc"
	"github.com/fwojciec/srcdoc/anthropic"
	"github.com/fwojciec/srcdoc/docgen"
	"github.com/fwojciec/srcdoc/doublestar"
	"github.com/fwojciec/srcdoc/fs"
	"github.com/fwojciec/srcdoc/gemini"
	srcslog "github.com/fwojciec/srcdoc/slog"
	"github.com/fwojciec/srcdoc/sqlite"
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

	// Services for end-to-end testing.
	RunService      srcdoc.RunService
	DocumentService srcdoc.DocumentService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("srcdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'srcdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SRCDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RunService = sqlite.NewRunService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService
	deps.Documents = m.DocumentService

	// Wire the generation pipeline only for the generate command
	if cmd == "generate" {
		generator, model, err := newGenerator(ctx, cli.Generate.Provider, cli.Generate.Model, stderr)
		if err != nil {
			return err
		}
		deps.Model = model

		var discoverer srcdoc.SourceDiscoverer = doublestar.NewDiscoverer(cli.Generate.Ext...)

		if cli.Generate.Verbose {
			logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))
			generator = srcslog.NewLoggingGenerator(generator, logger)
			discoverer = srcslog.NewLoggingDiscoverer(discoverer, logger)
		}

		deps.Pipeline = &docgen.Pipeline{
			Discoverer: discoverer,
			Generator:  generator,
			Writer:     fs.NewWriter(cli.Generate.Output),
			Documents:  m.DocumentService,
			Pacer:      docgen.NewPacer(cli.Generate.Delay),
		}

		// Local token counting is only available for Gemini models.
		if cli.Generate.Provider == "gemini" {
			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.Pipeline.TokenCounter = tokenCounter
		}
	}

	return kongCtx.Run(deps)
}

// newGenerator builds the generator for the requested provider, resolving
// the model name to the provider default when unset.
func newGenerator(ctx context.Context, provider, model string, stderr io.Writer) (srcdoc.Generator, string, error) {
	switch provider {
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "ANTHROPIC_API_KEY environment variable not set. Get an API key at https://console.anthropic.com/")
			return nil, "", fmt.Errorf("ANTHROPIC_API_KEY not set. Get a key at https://console.anthropic.com/")
		}
		if model == "" {
			model = defaultAnthropicModel
		}
		return anthropic.NewGenerator(anthropic.NewClient(apiKey), model), model, nil

	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, "", fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		if model == "" {
			model = defaultGeminiModel
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, "", fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, model), model, nil
	}
}

const defaultGeminiModel = "gemini-3-flash-preview"
const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

// tokenizerModel is used for token counting. Using gemini-2.5-flash until
// gemini-3-flash-preview is supported by google.golang.org/genai/tokenizer.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("SRCDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "srcdoc.db"
	}
	dir := filepath.Join(home, ".srcdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "srcdoc.db")
}
