package sys

import (
	"path/filepath"
	"testing"
)

func TestToPath(t *testing.T) {
	tests := []string{
		"",
		"main.go",
		"src/main.go",
		"/etc/kibi/config.ini",
		"./relative/../path",
		"with space.txt",
	}

	for _, name := range tests {
		if got := ToPath(name).String(); got != name {
			t.Errorf("ToPath(%q) = %q, want the name unchanged", name, got)
		}
	}
}

func TestPathMethods(t *testing.T) {
	p := ToPath(filepath.Join("docs", "guide", "intro.md"))

	if p.Base() != "intro.md" {
		t.Errorf("Base: got %q", p.Base())
	}
	if p.Ext() != ".md" {
		t.Errorf("Ext: got %q", p.Ext())
	}
	if p.Dir() != ToPath(filepath.Join("docs", "guide")) {
		t.Errorf("Dir: got %q", p.Dir())
	}
	if p.IsAbs() {
		t.Error("expected relative path")
	}
	if got := p.Dir().Join("outro.md"); got != ToPath(filepath.Join("docs", "guide", "outro.md")) {
		t.Errorf("Join: got %q", got)
	}
	if got := ToPath(filepath.Join("a", "..", "b")).Clean(); got != "b" {
		t.Errorf("Clean: got %q", got)
	}
}
