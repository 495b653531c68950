package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skim/digest"
	"github.com/fwojciec/skim/fs"
	"github.com/fwojciec/skim/goquery"
	"github.com/fwojciec/skim/htmltomarkdown"
	skimslog "github.com/fwojciec/skim/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("skim"),
		kong.Description("Summarize text by naive sentence-intersection ranking."),
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
		return fmt.Errorf("no command specified. Run 'skim --help' to see available commands")
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

	// Wire core services into dependencies
	deps.Loader = fs.NewLoader()
	deps.Extractor = goquery.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Summarizer = digest.NewSummarizer()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Loader = skimslog.NewLoggingLoader(deps.Loader, logger)
		deps.Summarizer = skimslog.NewLoggingSummarizer(deps.Summarizer, logger)
	}

	deps.Digester = &digest.Digester{
		Loader:      deps.Loader,
		Extractor:   deps.Extractor,
		Converter:   deps.Converter,
		Summarizer:  deps.Summarizer,
		Concurrency: cli.Digest.Concurrency,
	}

	return kongCtx.Run(deps)
}
