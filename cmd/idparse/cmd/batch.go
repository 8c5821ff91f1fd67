package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gulftech/idparse/internal/batch"
	"github.com/gulftech/idparse/internal/config"
)

// batchCmd represents the batch command for parallel document processing.
var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Process multiple document captures in parallel",
	Long: `Process directories or lists of document captures in parallel.

Supported inputs: plain text dumps (.txt), OCR service JSON responses
(.json), and searchable PDFs (.pdf).

Examples:
  idparse batch scans/
  idparse batch scans/ --recursive --workers 8
  idparse batch a.txt b.json --format csv --output results.csv
  idparse batch visas/ --document visa --include '*.pdf'`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runBatchCommand,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("document", "d", "id", "document type (id_front, id_back, id, passport, visa)")
	batchCmd.Flags().StringP("format", "f", "json", "output format (json, csv, yaml, text)")
	batchCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	batchCmd.Flags().String("pages", "", "PDF page range to process (e.g., '1-5', '1,3,5')")
	batchCmd.Flags().IntP("workers", "w", 4, "number of parallel workers")
	batchCmd.Flags().BoolP("recursive", "r", false, "process directories recursively")
	batchCmd.Flags().StringSlice("include", nil, "include file patterns (e.g., '*.txt')")
	batchCmd.Flags().StringSlice("exclude", nil, "exclude file patterns")
	batchCmd.Flags().Bool("continue-on-error", true, "continue processing when a file fails")
	batchCmd.Flags().BoolP("quiet", "q", false, "suppress progress output")
	batchCmd.Flags().Bool("stats", false, "print processing statistics")
}

// configToBatchConfig maps centralized configuration to batch.Config.
// CLI flags override config file values.
func configToBatchConfig(cfg *config.Config, cmd *cobra.Command) batch.Config {
	batchConfig := batch.Config{}

	batchConfig.Document, _ = cmd.Flags().GetString("document")
	batchConfig.PageRange, _ = cmd.Flags().GetString("pages")

	batchConfig.Format = cfg.Output.Format
	if cmd.Flags().Changed("format") {
		batchConfig.Format, _ = cmd.Flags().GetString("format")
	}

	batchConfig.OutputFile = cfg.Output.File
	if cmd.Flags().Changed("output") {
		batchConfig.OutputFile, _ = cmd.Flags().GetString("output")
	}

	batchConfig.Workers = cfg.Batch.Workers
	if cmd.Flags().Changed("workers") {
		batchConfig.Workers, _ = cmd.Flags().GetInt("workers")
	}

	batchConfig.Recursive = cfg.Batch.Recursive
	if cmd.Flags().Changed("recursive") {
		batchConfig.Recursive, _ = cmd.Flags().GetBool("recursive")
	}

	batchConfig.IncludePatterns = cfg.Batch.IncludePatterns
	if cmd.Flags().Changed("include") {
		batchConfig.IncludePatterns, _ = cmd.Flags().GetStringSlice("include")
	}

	batchConfig.ExcludePatterns = cfg.Batch.ExcludePatterns
	if cmd.Flags().Changed("exclude") {
		batchConfig.ExcludePatterns, _ = cmd.Flags().GetStringSlice("exclude")
	}

	batchConfig.ContinueOnError = cfg.Batch.ContinueOnError
	if cmd.Flags().Changed("continue-on-error") {
		batchConfig.ContinueOnError, _ = cmd.Flags().GetBool("continue-on-error")
	}

	batchConfig.Quiet, _ = cmd.Flags().GetBool("quiet")
	batchConfig.ShowStats, _ = cmd.Flags().GetBool("stats")

	return batchConfig
}

func runBatchCommand(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	batchConfig := configToBatchConfig(cfg, cmd)

	extractor, err := cfg.NewExtractor()
	if err != nil {
		return err
	}

	result, err := batch.Process(extractor, batchConfig, args)
	if err != nil {
		return err
	}

	if err := result.SaveResults(batchConfig.Format, batchConfig.OutputFile, batchConfig.Quiet); err != nil {
		return err
	}

	if batchConfig.ShowStats {
		result.PrintStats(batchConfig.Quiet)
	}
	return nil
}
