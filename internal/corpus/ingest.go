package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUpstream marks a failure of the upstream OCR collaborator. It is the
// only error that crosses the extraction boundary; everything else
// degrades to partial output.
var ErrUpstream = errors.New("upstream OCR failure")

// OCRPayload is the contract delivered by the OCR collaborator: the raw
// text, an exit code, and an optional error message. A non-zero code or
// non-empty error means no corpus can be produced.
type OCRPayload struct {
	Text string `json:"text"`
	Code int    `json:"code"`
	Err  string `json:"error"`
}

// Resolve converts the payload into a corpus or an upstream failure.
func (p OCRPayload) Resolve() (*Corpus, error) {
	if p.Code != 0 || p.Err != "" {
		msg := p.Err
		if msg == "" {
			msg = fmt.Sprintf("exit code %d", p.Code)
		}
		return nil, fmt.Errorf("%w: %s", ErrUpstream, msg)
	}
	return New(p.Text), nil
}

// ocrSpaceResponse mirrors the subset of the OCR.space JSON shape we
// consume. Fields arrive either as plain strings or wrapped objects;
// everything is flattened to strings here so extractors never see the
// upstream shapes.
type ocrSpaceResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	OCRExitCode  int             `json:"OCRExitCode"`
	ErrorMessage json.RawMessage `json:"ErrorMessage"`
}

// FromServiceJSON ingests a raw OCR.space-style response body and builds a
// page-per-result corpus. Service-reported errors surface as ErrUpstream.
func FromServiceJSON(body []byte) (*Corpus, error) {
	var resp ocrSpaceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUpstream, err)
	}
	if msg := flattenMessage(resp.ErrorMessage); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, msg)
	}
	if resp.OCRExitCode > 1 {
		return nil, fmt.Errorf("%w: exit code %d", ErrUpstream, resp.OCRExitCode)
	}
	if len(resp.ParsedResults) == 0 {
		return nil, fmt.Errorf("%w: no parsed results", ErrUpstream)
	}
	pages := make([]string, 0, len(resp.ParsedResults))
	for _, r := range resp.ParsedResults {
		pages = append(pages, r.ParsedText)
	}
	return New(pages...), nil
}

// flattenMessage accepts the service's error field in either of its wire
// shapes (string or list of strings) and returns a single message.
func flattenMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.TrimSpace(strings.Join(list, "; "))
	}
	return strings.TrimSpace(string(raw))
}
