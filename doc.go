// Package textmetrics computes lexicon-based sentiment and readability
// statistics for English prose.
//
// The core entry point is Analyze, a pure function from text and three word
// lists to a Metrics record. NewDocument runs the same pipeline with
// functional options for custom segmentation, cancellation, and progress
// reporting. The rest of the package covers the collaborators a working
// tool needs: word-list loading with encoding fallback, URL scraping,
// markdown stripping, corpus batch analysis, and stem-grouped term
// frequencies.
package textmetrics
