// Package report renders checker results for terminals, logs, and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/staticproof/checker"
)

// Format selects a rendering style.
type Format string

const (
	// FormatTerminal is rich colored output for interactive use
	FormatTerminal Format = "terminal"
	// FormatPlain is uncolored output for logs and CI transcripts
	FormatPlain Format = "plain"
	// FormatJSON is machine-readable output
	FormatJSON Format = "json"
)

// Reporter writes checker results to a stream.
type Reporter struct {
	out    io.Writer
	format Format
}

// New creates a Reporter.
func New(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Render writes the full result, violations first, summary last.
func (r *Reporter) Render(res checker.Result) error {
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for _, v := range res.Violations {
		fmt.Fprintln(r.out, r.formatViolation(v))
	}
	if len(res.Violations) > 0 {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out, r.formatSummary(res))
	return nil
}

// formatViolation renders one finding on one line.
func (r *Reporter) formatViolation(v checker.Violation) string {
	if r.format == FormatPlain {
		return v.String()
	}

	var severity string
	switch v.Severity {
	case checker.SeverityError:
		severity = pterm.Red("error")
	case checker.SeverityNotice:
		severity = pterm.Blue("notice")
	default:
		severity = string(v.Severity)
	}

	return fmt.Sprintf("%s: %s: %s", pterm.LightCyan(v.Pos.String()), severity, v.Message)
}

// formatSummary renders the closing verdict line.
func (r *Reporter) formatSummary(res checker.Result) string {
	errs := len(res.Errors())
	notices := len(res.Violations) - errs

	var sb strings.Builder
	if errs > 0 {
		sb.WriteString(fmt.Sprintf("%d of %d assertions refuted", errs, res.Assertions))
	} else {
		sb.WriteString(fmt.Sprintf("%d assertions verified", res.Assertions))
	}
	sb.WriteString(fmt.Sprintf(" across %d packages", res.Packages))
	if notices > 0 {
		sb.WriteString(fmt.Sprintf(" (%d notices)", notices))
	}

	if r.format == FormatPlain {
		return sb.String()
	}
	if errs > 0 {
		return pterm.Red(sb.String())
	}
	return pterm.Green(sb.String())
}
