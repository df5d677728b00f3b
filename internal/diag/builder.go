package diag

import "cyan/internal/source"

// Builder accumulates a Diagnostic's notes before it is emitted exactly once.
type Builder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

func newBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *Builder {
	return &Builder{reporter: r, diag: Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}}
}

// ReportError starts building an error-severity diagnostic.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *Builder {
	return newBuilder(r, SevError, code, primary, msg)
}

// ReportWarning starts building a warning-severity diagnostic.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *Builder {
	return newBuilder(r, SevWarning, code, primary, msg)
}

// WithNote appends a secondary span/message.
func (b *Builder) WithNote(span source.Span, msg string) *Builder {
	if b == nil {
		return nil
	}
	b.diag.Notes = append(b.diag.Notes, Note{Span: span, Msg: msg})
	return b
}

// Emit sends the accumulated diagnostic to the reporter exactly once.
func (b *Builder) Emit() {
	if b == nil || b.emitted {
		return
	}
	b.emitted = true
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
}

// Diagnostic returns the accumulated diagnostic without emitting it.
func (b *Builder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}
