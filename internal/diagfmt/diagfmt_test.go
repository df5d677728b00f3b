package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"cyan/internal/diag"
	"cyan/internal/source"
)

func TestPrettyColorOffProducesPlainText(t *testing.T) {
	items := []diag.Diagnostic{
		{Severity: diag.SevError, Code: diag.SemaUnresolvedSymbol, Message: "boom", Primary: source.Span{File: 1, Start: 0, End: 1}},
	}
	var buf bytes.Buffer
	Pretty(&buf, items, ColorOff)
	out := buf.String()
	if !strings.Contains(out, "boom") || strings.Contains(out, "\x1b[") {
		t.Fatalf("expected plain uncolored text, got %q", out)
	}
}

func TestJSONEncodesEveryDiagnostic(t *testing.T) {
	items := []diag.Diagnostic{
		{Severity: diag.SevWarning, Code: diag.SemaOverloadCollision, Message: "dup", Primary: source.Span{File: 1, Start: 2, End: 3}},
	}
	var buf bytes.Buffer
	if err := JSON(&buf, items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\"message\": \"dup\"") {
		t.Fatalf("expected message field in JSON output, got %q", buf.String())
	}
}

func TestSourcePreviewRendersLineAndCaret(t *testing.T) {
	files := source.NewFiles()
	id := files.Register("demo.cys", []byte("a = 0\nb = oops\n"))
	d := diag.Diagnostic{Severity: diag.SevError, Code: diag.SemaUnresolvedSymbol, Message: "x", Primary: source.Span{File: id, Start: 10, End: 14}}

	var buf bytes.Buffer
	SourcePreview(&buf, files, d)
	out := buf.String()
	if !strings.Contains(out, "b = oops") {
		t.Fatalf("expected the source line in output, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret line, got %q", out)
	}
}
