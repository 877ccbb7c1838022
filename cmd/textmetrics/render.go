package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/textmetrics"
)

// A Report is the analyze output envelope.
type Report struct {
	Source  string              `json:"source" yaml:"source"`
	Metrics textmetrics.Metrics `json:"metrics" yaml:"metrics"`
	Terms   []textmetrics.Term  `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// A BatchReport is the batch output envelope.
type BatchReport struct {
	Files   []textmetrics.FileMetrics `json:"files" yaml:"files"`
	Summary textmetrics.Summary       `json:"summary" yaml:"summary"`
}

// A Formatter renders reports to a writer.
type Formatter interface {
	Format(w io.Writer, r Report) error
	FormatBatch(w io.Writer, b BatchReport) error
}

func newFormatter(name string) (Formatter, error) {
	switch name {
	case "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// TextFormatter writes a human-readable report.
type TextFormatter struct{}

func (f *TextFormatter) Format(w io.Writer, r Report) error {
	fmt.Fprintf(w, "Source: %s\n\n", r.Source)
	writeMetrics(w, r.Metrics)
	if len(r.Terms) > 0 {
		fmt.Fprintf(w, "\nTop terms:\n")
		for _, t := range r.Terms {
			fmt.Fprintf(w, "  %-24s %d\n", t.Word, t.Count)
		}
	}
	return nil
}

func (f *TextFormatter) FormatBatch(w io.Writer, b BatchReport) error {
	for _, fm := range b.Files {
		m := fm.Metrics
		fmt.Fprintf(w, "%s\n  fog %.2f  polarity %+.3f  subjectivity %.3f  words %d\n",
			fm.Path, m.FogIndex, m.Polarity, m.Subjectivity, m.WordCount)
	}
	s := b.Summary
	fmt.Fprintf(w, "\n%d documents, %d words\n", s.Documents, s.Words)
	fmt.Fprintf(w, "  fog index:    mean %.2f  stddev %.2f\n", s.MeanFogIndex, s.StdDevFogIndex)
	fmt.Fprintf(w, "  polarity:     mean %+.3f  stddev %.3f\n", s.MeanPolarity, s.StdDevPolarity)
	fmt.Fprintf(w, "  subjectivity: mean %.3f\n", s.MeanSubjectivity)
	return nil
}

func writeMetrics(w io.Writer, m textmetrics.Metrics) {
	fmt.Fprintf(w, "  Polarity:            %8.3f\n", m.Polarity)
	fmt.Fprintf(w, "  Subjectivity:        %8.3f\n", m.Subjectivity)
	fmt.Fprintf(w, "  Fog index:           %8.2f\n", m.FogIndex)
	fmt.Fprintf(w, "  Avg sentence length: %8.2f\n", m.AvgSentenceLength)
	fmt.Fprintf(w, "  Complex words:       %8.2f%%  (%d of %d)\n", m.PctComplexWords, m.ComplexWordCount, m.WordCount)
	fmt.Fprintf(w, "  Avg word length:     %8.2f\n", m.AvgWordLength)
	fmt.Fprintf(w, "  Syllables per word:  %8.2f\n", m.SyllablesPerWord)
	fmt.Fprintf(w, "  Personal pronouns:   %8d\n", m.PersonalPronouns)
	fmt.Fprintf(w, "  Stop words removed:  %8d\n", m.StopWordCount)
	fmt.Fprintf(w, "  Sentences:           %8d\n", m.SentenceCount)
	fmt.Fprintf(w, "  Sentiment words:     %8d positive, %d negative\n", m.PositiveWords, m.NegativeWords)
}

// JSONFormatter writes indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, r Report) error {
	return encodeJSON(w, r)
}

func (f *JSONFormatter) FormatBatch(w io.Writer, b BatchReport) error {
	return encodeJSON(w, b)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAMLFormatter writes YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(w io.Writer, r Report) error {
	return encodeYAML(w, r)
}

func (f *YAMLFormatter) FormatBatch(w io.Writer, b BatchReport) error {
	return encodeYAML(w, b)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
