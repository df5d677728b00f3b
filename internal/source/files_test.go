package source

import "testing"

func TestFilesLineReturnsContainingLine(t *testing.T) {
	files := NewFiles()
	id := files.Register("demo.cys", []byte("a = 0\nb = 1\nc = 2\n"))

	got := files.Line(id, 8) // offset within "b = 1"
	if string(got) != "b = 1" {
		t.Fatalf("expected %q, got %q", "b = 1", string(got))
	}

	got = files.Line(id, 0) // offset within "a = 0"
	if string(got) != "a = 0" {
		t.Fatalf("expected %q, got %q", "a = 0", string(got))
	}
}

func TestFilesLineUnknownFileReturnsNil(t *testing.T) {
	files := NewFiles()
	if got := files.Line(FileID(99), 0); got != nil {
		t.Fatalf("expected nil for unknown file, got %q", got)
	}
}
