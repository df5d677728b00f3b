// Package diag defines the diagnostic model the semantic analyzer reports
// through: a severity/code/message triple anchored at a source.Span, with
// optional notes. Formatting and CLI presentation live outside this module.
package diag

import "cyan/internal/source"

// Note attaches a secondary span/message to a Diagnostic, e.g. pointing at
// a previous declaration.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// Reporter receives diagnostics from whichever phase is running. SemaDriver
// depends only on this interface, never on a concrete sink.
type Reporter interface {
	Report(d Diagnostic)
}
