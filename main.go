package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"simplesql/pkg/diagnostics"
	scanerr "simplesql/pkg/error"
	"simplesql/pkg/logging"
	"simplesql/pkg/scanner"
	"simplesql/pkg/tokendump"
	"simplesql/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type Configuration struct {
	InputFile   string
	Format      tokendump.Format
	Highlight   bool
	Interactive bool
	Strict      bool
	LogLevel    logging.LogLevel
	LogFile     string
	LogFormat   string
}

// errUnknownTokens is returned by run in strict mode when the input
// contains lexemes the scanner could not classify.
var errUnknownTokens = errors.New("input contains unknown tokens")

func main() {
	config, err := parseArguments(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if err := logging.Init(logConfig(config)); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	err = run(config, os.Stdin, os.Stdout, os.Stderr)
	closeErr := logging.Close()

	if errors.Is(err, errUnknownTokens) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("sqlscan: %v", err)
	}
	if closeErr != nil {
		log.Fatalf("Failed to close logging: %v", closeErr)
	}
}

// logConfig maps the command-line options onto the logger configuration.
// The interactive explorer owns the terminal, so unless a log file is given
// its logs are discarded instead of being drawn over the screen.
func logConfig(config Configuration) logging.Config {
	lc := logging.Config{
		Level:      config.LogLevel,
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	}
	if config.Interactive && config.LogFile == "" {
		lc.Writer = io.Discard
	}
	return lc
}

// parseArguments processes command-line flags
func parseArguments(args []string) (Configuration, error) {
	var (
		config   Configuration
		format   string
		logLevel string
	)
	fs := flag.NewFlagSet("sqlscan", flag.ContinueOnError)

	fs.StringVar(&config.InputFile, "input", "", "SimpleSQL file to scan (default: stdin, or first argument)")
	fs.StringVar(&format, "format", "text", "Token output format: text, json or table")
	fs.BoolVar(&config.Highlight, "highlight", false, "Print the source with syntax highlighting instead of tokens")
	fs.BoolVar(&config.Interactive, "i", false, "Start the interactive token explorer")
	fs.BoolVar(&config.Strict, "strict", false, "Report unknown tokens as syntax errors and exit non-zero")
	fs.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	fs.StringVar(&config.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")

	if err := fs.Parse(args); err != nil {
		return config, err
	}

	if config.InputFile == "" && fs.NArg() > 0 {
		config.InputFile = fs.Arg(0)
	}

	var err error
	if config.Format, err = tokendump.ParseFormat(format); err != nil {
		return config, err
	}
	if config.LogLevel, err = logging.ParseLevel(logLevel); err != nil {
		return config, err
	}
	if config.LogFormat != "text" && config.LogFormat != "json" {
		return config, fmt.Errorf("unknown log format %q (want text or json)", config.LogFormat)
	}

	return config, nil
}

// run scans the configured input and writes the result to stdout.
func run(config Configuration, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	defer recoverContract(&err)

	input := stdin
	source := "stdin"
	if config.InputFile != "" {
		f, err := os.Open(config.InputFile)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		input = f
		source = config.InputFile
	}

	if config.Interactive || config.Highlight {
		src, err := io.ReadAll(input)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if config.Interactive {
			return startInteractiveMode(string(src))
		}
		_, err = fmt.Fprintln(stdout, ui.NewSQLHighlighter().Highlight(string(src)))
		return err
	}

	tokens, err := scanner.Tokenize(input)
	if err != nil {
		logging.Error("scan stopped early", "source", source, "error", err)
		return err
	}
	logging.Info("scan finished", "source", source, "tokens", len(tokens))

	if err := tokendump.NewWriter(stdout, config.Format).WriteAll(tokens); err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}

	if config.Strict {
		bag := diagnostics.Check(source, tokens)
		if bag.HasErrors() {
			if err := bag.Emit(stderr); err != nil {
				return err
			}
			return errUnknownTokens
		}
	}

	return nil
}

// recoverContract turns a contract-violation panic raised by the scanner
// into an error stored in errp. The stack captured at the violation is
// logged at debug level. Any other panic is propagated.
func recoverContract(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	se, ok := r.(*scanerr.ScanError)
	if !ok || se.Category != scanerr.ErrCategoryContract {
		panic(r)
	}
	logging.Debug("contract violation", "error", se, "stack", se.FormatStack())
	*errp = se
}

// startInteractiveMode launches the Bubble Tea token explorer
func startInteractiveMode(src string) error {
	p := tea.NewProgram(
		ui.NewModel(src),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}

	return nil
}
