// Package batch processes directories of identity-document captures
// (OCR text dumps, OCR service responses, searchable PDFs) through the
// extractor with a worker pool.
package batch

import (
	"fmt"
	"os"
	"time"

	"github.com/gulftech/idparse/internal/document"
)

// Config holds all configuration for batch processing.
type Config struct {
	// Extraction settings
	Document  string
	PageRange string

	// Output settings
	Format     string
	OutputFile string

	// Parallel processing settings
	Workers         int
	ContinueOnError bool

	// File discovery settings
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// Progress settings
	Quiet     bool
	ShowStats bool
}

// Result holds the result of batch processing.
type Result struct {
	Results     []document.FileResult
	Duration    time.Duration
	WorkerCount int
}

// FormatResults formats the batch processing results in the specified format.
func (r *Result) FormatResults(format string) (string, error) {
	return document.FormatResults(r.Results, format)
}

// SaveResults saves the formatted results to a file or stdout.
func (r *Result) SaveResults(format, outputFile string, quiet bool) error {
	output, err := r.FormatResults(format)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !quiet {
			_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", outputFile)
		}
	} else {
		_, _ = fmt.Fprint(os.Stdout, output)
	}

	return nil
}

// Failed counts the per-file results that ended in an error.
func (r *Result) Failed() int {
	failed := 0
	for _, fr := range r.Results {
		if fr.Error != "" {
			failed++
		}
	}
	return failed
}

// Complete counts the results where all expected fields resolved.
func (r *Result) Complete() int {
	complete := 0
	for _, fr := range r.Results {
		if fr.Result != nil && fr.Result.Complete {
			complete++
		}
	}
	return complete
}

// PrintStats prints processing statistics.
func (r *Result) PrintStats(quiet bool) {
	if quiet {
		return
	}
	total := len(r.Results)
	_, _ = fmt.Fprintf(os.Stderr, "\nProcessing Statistics:\n")
	_, _ = fmt.Fprintf(os.Stderr, "  Total files: %d\n", total)
	_, _ = fmt.Fprintf(os.Stderr, "  Failed: %d\n", r.Failed())
	_, _ = fmt.Fprintf(os.Stderr, "  Complete extractions: %d\n", r.Complete())
	_, _ = fmt.Fprintf(os.Stderr, "  Workers: %d\n", r.WorkerCount)
	_, _ = fmt.Fprintf(os.Stderr, "  Duration: %v\n", r.Duration.Round(time.Millisecond))
	if total > 0 && r.Duration > 0 {
		rate := float64(total) / r.Duration.Seconds()
		_, _ = fmt.Fprintf(os.Stderr, "  Throughput: %.1f files/sec\n", rate)
	}
}
