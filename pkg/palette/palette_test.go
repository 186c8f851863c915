package palette

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codebrainz/cpar/pkg/cpar"
)

const sample = `
version: v1
colors:
  brand: "#0a84ff"
  accent: "rgb(255,128,0)"
  warn: orange
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}

	want := []string{"accent", "brand", "warn"}
	if diff := cmp.Diff(want, p.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		want cpar.Color
	}{
		{"brand", 0x0a84ffff},
		{"accent", 0xff8000ff},
		{"warn", 0xffa500ff},
	}
	for _, tt := range tests {
		got, ok := p.Resolve(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Resolve(%q) = (%v, %v), want (%v, true)", tt.name, got, ok, tt.want)
		}
	}
}

func TestParseVersionDefaultsToV1(t *testing.T) {
	p, err := Parse([]byte("colors:\n  brand: red\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c, ok := p.Resolve("brand"); !ok || c != cpar.ColorRed {
		t.Errorf("Resolve(brand) = (%v, %v), want (red, true)", c, ok)
	}
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	for _, version := range []string{"v2", "v2.1.0", "1", "one"} {
		_, err := Parse([]byte("version: " + version + "\ncolors: {}\n"))
		if err == nil {
			t.Errorf("Parse accepted version %q", version)
		}
	}
}

func TestParseRejectsBadEntry(t *testing.T) {
	_, err := Parse([]byte("colors:\n  broken: \"rgb(256,0,0)\"\n"))
	if err == nil {
		t.Fatal("expected error for out-of-range entry")
	}
	var eerr *EntryError
	if !errors.As(err, &eerr) {
		t.Fatalf("error type = %T, want *EntryError", err)
	}
	if eerr.Name != "broken" || eerr.Status != cpar.StatusNumberRange {
		t.Errorf("EntryError = %+v, want broken/number range", eerr)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error message %q should name the entry", err.Error())
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("colors: [not a map")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestResolveFallsBackToParser(t *testing.T) {
	p, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// CSS keyword not defined by the palette
	if c, ok := p.Resolve("steelblue"); !ok || c != 0x4682b4ff {
		t.Errorf("Resolve(steelblue) = (%v, %v), want (#4682b4ff, true)", c, ok)
	}
	// literal colour string
	if c, ok := p.Resolve("#010203"); !ok || c != 0x010203ff {
		t.Errorf("Resolve(#010203) = (%v, %v), want (#010203ff, true)", c, ok)
	}
	// nothing resolvable
	if _, ok := p.Resolve("not_a_color"); ok {
		t.Error("Resolve(not_a_color) = true, want miss")
	}
}

func TestResolveShadowsBuiltins(t *testing.T) {
	p, err := Parse([]byte("colors:\n  red: \"#00ff00\"\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c, ok := p.Resolve("red"); !ok || c != 0x00ff00ff {
		t.Errorf("Resolve(red) = (%v, %v), want palette value #00ff00ff", c, ok)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
