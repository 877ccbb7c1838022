package textmetrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"gonum.org/v1/gonum/stat"
)

// FileMetrics pairs one analyzed file with its record.
type FileMetrics struct {
	Path    string  `json:"path" yaml:"path"`
	Metrics Metrics `json:"metrics" yaml:"metrics"`
}

// A Summary aggregates records across a corpus.
type Summary struct {
	Documents          int     `json:"documents" yaml:"documents"`
	Words              int     `json:"words" yaml:"words"`
	MeanFogIndex       float64 `json:"mean_fog_index" yaml:"mean_fog_index"`
	StdDevFogIndex     float64 `json:"stddev_fog_index" yaml:"stddev_fog_index"`
	MeanPolarity       float64 `json:"mean_polarity" yaml:"mean_polarity"`
	StdDevPolarity     float64 `json:"stddev_polarity" yaml:"stddev_polarity"`
	MeanSubjectivity   float64 `json:"mean_subjectivity" yaml:"mean_subjectivity"`
	MeanSentenceLength float64 `json:"mean_sentence_length" yaml:"mean_sentence_length"`
	MeanComplexPct     float64 `json:"mean_complex_pct" yaml:"mean_complex_pct"`
}

// DiscoverFiles expands the include patterns (doublestar syntax, so "**"
// crosses directories) and drops paths matched by any exclude pattern.
// Directories are skipped; the result is deduplicated and sorted.
func DiscoverFiles(patterns, excludes []string) ([]string, error) {
	globs := make([]glob.Glob, 0, len(excludes))
	for _, e := range excludes {
		g, err := glob.Compile(e, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", e, err)
		}
		globs = append(globs, g)
	}

	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
	next:
		for _, m := range matches {
			m = filepath.ToSlash(m)
			if _, dup := seen[m]; dup {
				continue
			}
			for _, g := range globs {
				if g.Match(m) {
					continue next
				}
			}
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ReadTextFile loads one input file as analyzable prose. Markdown files
// are stripped of markup first.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &InputError{Source: path, Err: err}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return MarkdownText(data)
	default:
		return string(data), nil
	}
}

// AnalyzeFiles reads and analyzes each path with the given lexicons.
func AnalyzeFiles(paths []string, lex Lexicons) ([]FileMetrics, error) {
	out := make([]FileMetrics, 0, len(paths))
	for _, path := range paths {
		text, err := ReadTextFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, FileMetrics{Path: path, Metrics: Analyze(text, lex)})
	}
	return out, nil
}

// Summarize aggregates per-file records. Standard deviations are zero when
// fewer than two documents exist.
func Summarize(results []FileMetrics) Summary {
	s := Summary{Documents: len(results)}
	if len(results) == 0 {
		return s
	}

	fog := make([]float64, len(results))
	pol := make([]float64, len(results))
	subj := make([]float64, len(results))
	asl := make([]float64, len(results))
	pcw := make([]float64, len(results))
	for i, r := range results {
		fog[i] = r.Metrics.FogIndex
		pol[i] = r.Metrics.Polarity
		subj[i] = r.Metrics.Subjectivity
		asl[i] = r.Metrics.AvgSentenceLength
		pcw[i] = r.Metrics.PctComplexWords
		s.Words += r.Metrics.WordCount
	}

	s.MeanFogIndex = stat.Mean(fog, nil)
	s.MeanPolarity = stat.Mean(pol, nil)
	s.MeanSubjectivity = stat.Mean(subj, nil)
	s.MeanSentenceLength = stat.Mean(asl, nil)
	s.MeanComplexPct = stat.Mean(pcw, nil)
	if len(results) > 1 {
		s.StdDevFogIndex = stat.StdDev(fog, nil)
		s.StdDevPolarity = stat.StdDev(pol, nil)
	}
	return s
}
