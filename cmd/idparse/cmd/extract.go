package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gulftech/idparse/internal/corpus"
	"github.com/gulftech/idparse/internal/document"
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract structured fields from OCR text dumps",
	Long: `Extract structured fields from OCR text of identity documents.

Input files may be plain text dumps (.txt) or raw OCR service JSON
responses (.json). Use "-" to read a text dump from stdin.

Examples:
  idparse extract card.txt --document id_front
  idparse extract response.json --document visa --format yaml
  cat card.txt | idparse extract - --document id`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runExtractCommand,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("document", "d", "id", "document type (id_front, id_back, id, passport, visa)")
	extractCmd.Flags().StringP("format", "f", "json", "output format (json, csv, yaml, text)")
	extractCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}

func runExtractCommand(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	docStr, _ := cmd.Flags().GetString("document")
	docType, err := document.ParseType(docStr)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}

	outputFile := cfg.Output.File
	if cmd.Flags().Changed("output") {
		outputFile, _ = cmd.Flags().GetString("output")
	}

	extractor, err := cfg.NewExtractor()
	if err != nil {
		return err
	}

	results := make([]document.FileResult, 0, len(args))
	for _, arg := range args {
		fr := document.FileResult{File: arg}
		c, err := readTextCorpus(cmd.InOrStdin(), arg)
		if err != nil {
			return err
		}
		res, err := extractor.ExtractPerPage(docType, c)
		if err != nil {
			return err
		}
		fr.Result = res
		results = append(results, fr)
	}

	output, err := document.FormatResults(results, format)
	if err != nil {
		return err
	}
	return writeOutput(output, outputFile)
}

// readTextCorpus builds a corpus from one extract argument: stdin for
// "-", an OCR service response for .json files, a text dump otherwise.
func readTextCorpus(stdin io.Reader, arg string) (*corpus.Corpus, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return corpus.New(string(data)), nil
	}

	data, err := os.ReadFile(arg) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", arg, err)
	}
	if strings.EqualFold(filepath.Ext(arg), ".json") {
		return corpus.FromServiceJSON(data)
	}
	return corpus.New(string(data)), nil
}

// writeOutput writes formatted output to a file or stdout.
func writeOutput(output, outputFile string) error {
	if outputFile == "" {
		_, err := fmt.Print(output)
		return err
	}
	if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
