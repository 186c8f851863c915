// Package palette loads user-defined colour palettes from YAML files.
//
// A palette file names a set of colours, each given in any syntax the
// cpar parser accepts:
//
//	version: v1
//	colors:
//	  brand: "#0a84ff"
//	  accent: "rgb(255,128,0)"
//	  warn: orange
package palette

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/codebrainz/cpar/pkg/cpar"
)

// file is the on-disk palette document.
type file struct {
	Version string            `yaml:"version,omitempty"`
	Colors  map[string]string `yaml:"colors"`
}

// Palette is an immutable set of named colours.
type Palette struct {
	colors map[string]cpar.Color
}

// EntryError reports a palette entry whose colour string failed to
// parse.
type EntryError struct {
	// Name is the palette entry name.
	Name string
	// Value is the colour string that failed.
	Value string
	// Status categorizes the parse failure.
	Status cpar.Status
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("palette entry %q: cannot parse %q: %s", e.Name, e.Value, e.Status.Describe())
}

// Load reads and parses a palette file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML palette document. A missing version defaults to
// v1; any version outside the v1 major is rejected.
func Parse(data []byte) (*Palette, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	version := f.Version
	if version == "" {
		version = "v1"
	}
	if !semver.IsValid(version) || semver.Major(version) != "v1" {
		return nil, fmt.Errorf("unsupported palette version %q", f.Version)
	}

	p := &Palette{colors: make(map[string]cpar.Color, len(f.Colors))}
	for name, value := range f.Colors {
		c, status := cpar.ParseValue(value)
		if status != cpar.StatusOK {
			return nil, &EntryError{Name: name, Value: value, Status: status}
		}
		p.colors[name] = c
	}
	return p, nil
}

// Resolve looks up a colour by palette entry name. Names not defined by
// the palette fall back to the cpar parser, so CSS keywords and literal
// colour strings resolve too. Palette entries shadow built-in keywords.
func (p *Palette) Resolve(name string) (cpar.Color, bool) {
	if c, ok := p.colors[name]; ok {
		return c, true
	}
	c, status := cpar.ParseValue(name)
	if status != cpar.StatusOK {
		return 0, false
	}
	return c, true
}

// Names returns the palette entry names in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.colors))
	for name := range p.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of palette entries.
func (p *Palette) Len() int {
	return len(p.colors)
}
