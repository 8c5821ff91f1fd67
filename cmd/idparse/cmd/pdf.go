package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gulftech/idparse/internal/document"
	"github.com/gulftech/idparse/internal/pdf"
)

// pdfCmd represents the pdf command.
var pdfCmd = &cobra.Command{
	Use:   "pdf [files...]",
	Short: "Extract structured fields from searchable PDFs",
	Long: `Extract structured fields from the text layer of identity document PDFs.

Only searchable PDFs are supported; scanned PDFs without a text layer
yield empty results.

Examples:
  idparse pdf visa.pdf --document visa
  idparse pdf *.pdf --format csv --output results.csv
  idparse pdf passport.pdf --pages 1-2`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runPDFCommand,
}

func init() {
	rootCmd.AddCommand(pdfCmd)

	pdfCmd.Flags().StringP("document", "d", "id", "document type (id_front, id_back, id, passport, visa)")
	pdfCmd.Flags().StringP("format", "f", "json", "output format (json, csv, yaml, text)")
	pdfCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	pdfCmd.Flags().String("pages", "", "page range to process (e.g., '1-5', '1,3,5')")
}

func runPDFCommand(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	docStr, _ := cmd.Flags().GetString("document")
	docType, err := document.ParseType(docStr)
	if err != nil {
		return err
	}

	pages, _ := cmd.Flags().GetString("pages")

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
		c, err := pdf.Ingest(arg, pages)
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
