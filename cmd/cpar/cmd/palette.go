package cmd

import (
	"fmt"

	"github.com/codebrainz/cpar/pkg/palette"
)

func init() {
	RegisterCommand(&Command{
		Name:  "palette",
		Short: "Validate a palette file",
		Long: `Load a YAML palette file, validate every entry and list the
resolved colours.

Palette files map names to colour strings:

  version: v1
  colors:
    brand: "#0a84ff"
    warn: orange`,
		Usage: "cpar palette <file.yaml>",
		Run:   runPalette,
	})
}

func runPalette(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one palette file is required\n\nUsage: cpar palette <file.yaml>")
	}

	p, err := palette.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d entries\n", args[0], p.Len())
	for _, name := range p.Names() {
		c, _ := p.Resolve(name)
		fmt.Printf("  %-20s %s\n", name, c)
	}
	return nil
}
