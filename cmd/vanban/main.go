// Command vanban processes crawled Vietnamese legal documents: it
// normalizes their text, segments it into articles, clauses, and
// points, and reports text the segmentation dropped or introduced.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/hqanh/vanban"
	"github.com/hqanh/vanban/diff"
	"github.com/hqanh/vanban/goquery"
	"github.com/hqanh/vanban/norm"
	"github.com/hqanh/vanban/segment"
	vbslog "github.com/hqanh/vanban/slog"
	"github.com/hqanh/vanban/sqlite"
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

	// Verbose enables debug logging.
	Verbose bool

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService vanban.DocumentService
	ResultService   vanban.ResultService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		Verbose: os.Getenv("VANBAN_DEBUG") != "",
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
		kong.Name("vanban"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'vanban --help' to see available commands")
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

	level := slog.LevelInfo
	if m.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VANBAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.ResultService = sqlite.NewResultService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Results = m.ResultService
	deps.Logger = logger

	segmenter := segment.New(nil)
	deps.Normalizer = norm.NewNormalizer()
	deps.Segmenter = vbslog.NewLoggingSegmenter(segmenter, logger)
	deps.Differ = vbslog.NewLoggingDiffer(diff.NewEngine(segmenter), logger)
	deps.Extractor = goquery.NewExtractor()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("VANBAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "vanban.db"
	}
	dir := filepath.Join(home, ".vanban")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "vanban.db")
}
