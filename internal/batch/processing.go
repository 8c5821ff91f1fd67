package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gulftech/idparse/internal/corpus"
	"github.com/gulftech/idparse/internal/document"
	"github.com/gulftech/idparse/internal/pdf"
)

// Process discovers input files from the arguments and runs them
// through the extractor with cfg.Workers concurrent workers. Results
// keep the discovery order regardless of completion order.
func Process(extractor *document.Extractor, cfg Config, args []string) (*Result, error) {
	if cfg.Document == "" {
		cfg.Document = string(document.TypeID)
	}
	docType, err := document.ParseType(cfg.Document)
	if err != nil {
		return nil, err
	}

	files, err := discoverInputFiles(args, cfg.Recursive, cfg.IncludePatterns, cfg.ExcludePatterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no processable files found (supported: .txt, .json, .pdf)")
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	start := time.Now()
	results := processFilesParallel(extractor, docType, cfg, files, workers)
	duration := time.Since(start)

	if !cfg.ContinueOnError {
		for _, fr := range results {
			if fr.Error != "" {
				return nil, fmt.Errorf("processing %s: %s", fr.File, fr.Error)
			}
		}
	}

	return &Result{
		Results:     results,
		Duration:    duration,
		WorkerCount: workers,
	}, nil
}

// processFilesParallel fans the files out over a fixed worker pool.
func processFilesParallel(extractor *document.Extractor, docType document.Type,
	cfg Config, files []string, workers int,
) []document.FileResult {
	results := make([]document.FileResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = processSingleFile(extractor, docType, files[i], cfg)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// processSingleFile ingests one file and extracts its fields. Errors
// are captured in the result so a bad file never aborts the pool.
func processSingleFile(extractor *document.Extractor, docType document.Type,
	path string, cfg Config,
) document.FileResult {
	fr := document.FileResult{File: path}

	c, err := readCorpus(path, cfg.PageRange)
	if err != nil {
		slog.Warn("skipping file", "file", path, "error", err)
		fr.Error = err.Error()
		return fr
	}

	res, err := extractor.ExtractPerPage(docType, c)
	if err != nil {
		fr.Error = err.Error()
		return fr
	}

	fr.Result = res
	return fr
}

// readCorpus builds a corpus from one input file based on its
// extension: searchable PDFs, OCR service JSON responses, or plain
// text dumps.
func readCorpus(path, pageRange string) (*corpus.Corpus, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdf.Ingest(path, pageRange)
	case ".json":
		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return corpus.FromServiceJSON(data)
	default:
		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return corpus.New(string(data)), nil
	}
}
