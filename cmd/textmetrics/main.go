package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/tsawler/textmetrics"
)

const usage = `textmetrics computes sentiment and readability metrics for English text.

Usage:
  textmetrics analyze [flags] [path|-]
  textmetrics batch [flags] pattern...
  textmetrics serve [flags]
  textmetrics version

Run 'textmetrics <command> --help' for command flags.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	switch args[0] {
	case "version":
		printVersion(os.Stdout)
		return 0
	case "help", "--help", "-h":
		fmt.Print(usage)
		return 0
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "textmetrics:", err)
		return 2
	}
	logger := newLogger(cfg.Log)

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:], cfg, logger)
	case "batch":
		return runBatch(args[1:], cfg, logger)
	case "serve":
		return runServe(args[1:], cfg, logger)
	default:
		fmt.Fprintf(os.Stderr, "textmetrics: unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func newLogger(cfg LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func runAnalyze(args []string, cfg *Config, logger zerolog.Logger) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var (
		rawurl    string
		format    string
		positive  string
		negative  string
		stopList  string
		termCount int
	)
	fs.StringVar(&rawurl, "url", "", "fetch the text to analyze from a URL")
	fs.StringVarP(&format, "format", "f", "text", "output format: text, json, or yaml")
	fs.StringVar(&positive, "positive", cfg.Lexicons.Positive, "path to a positive word list")
	fs.StringVar(&negative, "negative", cfg.Lexicons.Negative, "path to a negative word list")
	fs.StringVar(&stopList, "stopwords", cfg.Lexicons.StopWords, "path to a stop-word list")
	fs.IntVar(&termCount, "terms", 0, "also report the top N stemmed terms")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: textmetrics analyze [flags] [path|-]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	formatter, err := newFormatter(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "textmetrics:", err)
		return 2
	}

	lex, err := textmetrics.LoadLexicons(positive, negative, stopList)
	if err != nil {
		logger.Error().Err(err).Msg("loading lexicons")
		return 2
	}

	text, source, code := readInput(fs.Args(), rawurl, cfg, logger)
	if code != 0 {
		return code
	}
	if strings.TrimSpace(text) == "" {
		logger.Error().Str("source", source).Msg("no usable text in input")
		return 1
	}

	if score := textmetrics.EnglishScore(text); score < textmetrics.EnglishThreshold {
		logger.Warn().Float64("score", score).Str("source", source).
			Msg("input does not look like English prose; metrics may be unreliable")
	}

	doc, err := textmetrics.NewDocument(text, textmetrics.UsingLexicons(lex))
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		return 1
	}

	report := Report{Source: source, Metrics: doc.Metrics()}
	if termCount > 0 {
		report.Terms = textmetrics.TopTerms(text, termCount)
	}
	if err := formatter.Format(os.Stdout, report); err != nil {
		logger.Error().Err(err).Msg("writing output")
		return 1
	}
	return 0
}

// readInput resolves the analyze arguments into text: a URL, a file path,
// or "-"/no argument for stdin.
func readInput(args []string, rawurl string, cfg *Config, logger zerolog.Logger) (text, source string, code int) {
	switch {
	case rawurl != "" && len(args) > 0:
		fmt.Fprintln(os.Stderr, "textmetrics: pass a path or --url, not both")
		return "", "", 2
	case rawurl != "":
		fetcher := textmetrics.NewFetcher(
			textmetrics.WithUserAgent(cfg.Fetch.UserAgent),
			textmetrics.WithHTTPClient(&http.Client{Timeout: cfg.Fetch.Timeout}),
			textmetrics.WithMaxBody(cfg.Fetch.MaxBodyMB<<20),
		)
		t, err := fetcher.Fetch(context.Background(), rawurl)
		if err != nil {
			logger.Error().Err(err).Str("url", rawurl).Msg("fetch failed")
			return "", "", 1
		}
		return t, rawurl, 0
	case len(args) == 0 && !stdinIsPipe():
		fmt.Fprintln(os.Stderr, "textmetrics: no input; pass a path, -, or --url, or pipe text on stdin")
		return "", "", 2
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Error().Err(err).Msg("reading stdin")
			return "", "", 1
		}
		return string(data), "stdin", 0
	default:
		t, err := textmetrics.ReadTextFile(args[0])
		if err != nil {
			logger.Error().Err(err).Msg("reading input")
			return "", "", 1
		}
		return t, args[0], 0
	}
}

func runBatch(args []string, cfg *Config, logger zerolog.Logger) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	var (
		format   string
		excludes []string
		positive string
		negative string
		stopList string
	)
	fs.StringVarP(&format, "format", "f", "text", "output format: text, json, or yaml")
	fs.StringArrayVarP(&excludes, "exclude", "x", nil, "glob of paths to skip (repeatable)")
	fs.StringVar(&positive, "positive", cfg.Lexicons.Positive, "path to a positive word list")
	fs.StringVar(&negative, "negative", cfg.Lexicons.Negative, "path to a negative word list")
	fs.StringVar(&stopList, "stopwords", cfg.Lexicons.StopWords, "path to a stop-word list")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: textmetrics batch [flags] pattern...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "textmetrics: batch needs at least one glob pattern")
		return 2
	}

	formatter, err := newFormatter(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "textmetrics:", err)
		return 2
	}

	lex, err := textmetrics.LoadLexicons(positive, negative, stopList)
	if err != nil {
		logger.Error().Err(err).Msg("loading lexicons")
		return 2
	}

	paths, err := textmetrics.DiscoverFiles(fs.Args(), excludes)
	if err != nil {
		logger.Error().Err(err).Msg("expanding patterns")
		return 2
	}
	if len(paths) == 0 {
		logger.Error().Msg("no files matched")
		return 1
	}

	logger.Info().Int("files", len(paths)).Msg("analyzing corpus")
	results, err := textmetrics.AnalyzeFiles(paths, lex)
	if err != nil {
		logger.Error().Err(err).Msg("batch analysis failed")
		return 1
	}

	batch := BatchReport{Files: results, Summary: textmetrics.Summarize(results)}
	if err := formatter.FormatBatch(os.Stdout, batch); err != nil {
		logger.Error().Err(err).Msg("writing output")
		return 1
	}
	return 0
}

func stdinIsPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func printVersion(w io.Writer) {
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Fprintf(w, "textmetrics %s\n", version)
}
