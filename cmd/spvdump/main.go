package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/spirv-graph/errors"
	"github.com/wippyai/spirv-graph/spirv"
)

type config struct {
	format   string
	id       uint
	jobs     int
	validate bool
	color    bool
}

func main() {
	var (
		format      = flag.String("format", "table", "Output format: table, yaml or words")
		validate    = flag.Bool("validate", false, "Validate modules and report every violation")
		id          = flag.Uint("id", 0, "Print only the entity with this id")
		jobs        = flag.Int("j", runtime.GOMAXPROCS(0), "Number of files decoded in parallel")
		interactive = flag.Bool("i", false, "Interactive mode with TUI (first file only)")
		verbose     = flag.Bool("v", false, "Log decoder activity to stderr")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: spvdump [-format table|yaml|words] [-validate] [-id N] file.spv...")
		fmt.Fprintln(os.Stderr, "       spvdump -i file.spv  (interactive mode)")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	spirv.SetLogger(logger)
	defer func() { _ = logger.Sync() }()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(files[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := config{
		format:   *format,
		id:       *id,
		jobs:     *jobs,
		validate: *validate,
		color:    term.IsTerminal(int(os.Stdout.Fd())),
	}
	ok, err := run(context.Background(), os.Stdout, files, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

// run decodes every file and prints it. It reports false when validation
// found violations.
func run(ctx context.Context, w io.Writer, files []string, cfg config) (bool, error) {
	switch cfg.format {
	case "table", "yaml", "words":
	default:
		return false, fmt.Errorf("unknown format %q", cfg.format)
	}

	streams := make([][]byte, len(files))
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return false, fmt.Errorf("read file: %w", err)
		}
		streams[i] = data
	}

	dec := spirv.NewDecoder(spirv.Options{Concurrency: cfg.jobs})
	modules, err := dec.DecodeAll(ctx, streams)
	if err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}

	clean := true
	for i, m := range modules {
		if err := dump(w, files[i], m, cfg); err != nil {
			return false, err
		}
		if cfg.validate && !report(w, m) {
			clean = false
		}
	}
	return clean, nil
}

func dump(w io.Writer, file string, m *spirv.Module, cfg config) error {
	if cfg.id != 0 {
		e, err := m.Lookup(spirv.Id(cfg.id))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		return renderEntity(w, e)
	}

	switch cfg.format {
	case "yaml":
		return renderYAML(w, file, m)
	case "words":
		renderSummary(w, file, m)
		return renderWords(w, m)
	default:
		renderSummary(w, file, m)
		renderTable(w, m, cfg.color)
	}
	return nil
}

// report prints validation results and reports whether the module is clean.
func report(w io.Writer, m *spirv.Module) bool {
	err := m.Validate()
	if err == nil {
		_, _ = fmt.Fprintln(w, "Validation: ok")
		return true
	}

	ve, ok := err.(*errors.ValidationErrors)
	if !ok {
		_, _ = fmt.Fprintf(w, "Validation: %v\n", err)
		return false
	}
	_, _ = fmt.Fprintf(w, "Validation: %d violation(s)\n", len(ve.Errors))
	for _, v := range ve.Errors {
		_, _ = fmt.Fprintf(w, "  - %v\n", v)
	}
	return false
}
