// Package diagfmt renders diagnostics for a terminal or for machine
// consumption, grounded on the teacher's internal/diagfmt (pretty/JSON/SARIF
// renderers over its own AST/diagnostic model) trimmed to what sema's own
// diagnostics need: plain text coloring and JSON, not the AST-dump or SARIF
// renderers the teacher's broader toolchain also offers, since this module
// has no AST-dump or SARIF-consuming collaborator of its own.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"cyan/internal/diag"
)

// ColorMode selects whether Pretty emits ANSI color codes.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// resolve decides whether w should be colored under mode, auto-detecting
// TTY-ness the same way the teacher's cmd/surge does (golang.org/x/term).
func resolve(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.Faint)
)

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty writes one line per diagnostic (plus one per note), colored by
// severity when w resolves to a color-worthy destination under mode.
func Pretty(w io.Writer, items []diag.Diagnostic, mode ColorMode) {
	colored := resolve(mode, w)
	for _, d := range items {
		sev := d.Severity.String()
		if colored {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s: %s [%s] %s\n", d.Primary.String(), sev, d.Code.String(), d.Message)
		for _, n := range d.Notes {
			note := "note: " + n.Msg
			if colored {
				note = noteColor.Sprint(note)
			}
			fmt.Fprintf(w, "  %s: %s\n", n.Span.String(), note)
		}
	}
}

// jsonDiagnostic is the wire shape for JSON output: flat and stable, unlike
// diag.Diagnostic's own layout, so downstream tooling isn't coupled to this
// module's internal struct shape.
type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Span     string     `json:"span"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

type jsonNote struct {
	Span string `json:"span"`
	Msg  string `json:"msg"`
}

// JSON writes items as a JSON array, one object per diagnostic.
func JSON(w io.Writer, items []diag.Diagnostic) error {
	out := make([]jsonDiagnostic, len(items))
	for i, d := range items {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Span:     d.Primary.String(),
		}
		for _, n := range d.Notes {
			jd.Notes = append(jd.Notes, jsonNote{Span: n.Span.String(), Msg: n.Msg})
		}
		out[i] = jd
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
