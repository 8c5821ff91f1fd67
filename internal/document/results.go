package document

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gulftech/idparse/internal/extract"
)

// fieldOrder is the stable column and print order for field output.
var fieldOrder = []extract.Field{
	extract.FieldIDNumber,
	extract.FieldFullName,
	extract.FieldDateOfBirth,
	extract.FieldIssuingDate,
	extract.FieldExpiryDate,
	extract.FieldNationality,
	extract.FieldGender,
	extract.FieldOccupation,
	extract.FieldEmployerName,
	extract.FieldSponsorName,
	extract.FieldIssuingPlace,
	extract.FieldFileNumber,
	extract.FieldPassportNumber,
	extract.FieldUIDNumber,
	extract.FieldFamilySponsor,
	extract.FieldAddress,
}

// FileResult pairs an extraction result with the file it came from.
type FileResult struct {
	File   string  `json:"file" yaml:"file"`
	Result *Result `json:"result" yaml:"result"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// ToJSON renders a single result as indented JSON.
func ToJSON(res *Result) (string, error) {
	bts, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(bts) + "\n", nil
}

// ToYAML renders a single result as YAML.
func ToYAML(res *Result) (string, error) {
	bts, err := yaml.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(bts), nil
}

// ToText renders a single result as aligned key/value lines in the
// stable field order. Absent fields are omitted.
func ToText(res *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "document: %s\n", res.Document)
	fmt.Fprintf(&b, "complete: %t\n", res.Complete)
	for _, f := range fieldOrder {
		if v, ok := res.Fields.Get(f); ok {
			fmt.Fprintf(&b, "%s: %s\n", f, v)
		}
	}
	return b.String()
}

// FormatResults renders a batch of per-file results in the requested
// format: json, csv, yaml, or text.
func FormatResults(results []FileResult, format string) (string, error) {
	switch format {
	case "json":
		return formatResultsJSON(results)
	case "csv":
		return formatResultsCSV(results)
	case "yaml":
		bts, err := yaml.Marshal(struct {
			Documents []FileResult `yaml:"documents"`
		}{Documents: results})
		if err != nil {
			return "", fmt.Errorf("encode results: %w", err)
		}
		return string(bts), nil
	case "text", "":
		return formatResultsText(results), nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: json, csv, yaml, text)", format)
	}
}

func formatResultsJSON(results []FileResult) (string, error) {
	bts, err := json.MarshalIndent(struct {
		Documents []FileResult `json:"documents"`
	}{Documents: results}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode results: %w", err)
	}
	return string(bts) + "\n", nil
}

func formatResultsCSV(results []FileResult) (string, error) {
	header := []string{"file", "document", "complete", "error"}
	for _, f := range fieldOrder {
		header = append(header, string(f))
	}

	var out strings.Builder
	w := csv.NewWriter(&out)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, fr := range results {
		row := make([]string, 0, len(header))
		if fr.Result == nil {
			row = append(row, fr.File, "", "false", fr.Error)
			for range fieldOrder {
				row = append(row, "")
			}
		} else {
			row = append(row, fr.File, string(fr.Result.Document),
				strconv.FormatBool(fr.Result.Complete), fr.Error)
			for _, f := range fieldOrder {
				v, _ := fr.Result.Fields.Get(f)
				row = append(row, v)
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return out.String(), w.Error()
}

func formatResultsText(results []FileResult) string {
	var out strings.Builder
	for i, fr := range results {
		if i > 0 {
			out.WriteString("\n")
		}
		fmt.Fprintf(&out, "# %s\n", fr.File)
		if fr.Error != "" {
			fmt.Fprintf(&out, "error: %s\n", fr.Error)
			continue
		}
		if fr.Result != nil {
			out.WriteString(ToText(fr.Result))
		}
	}
	return out.String()
}
