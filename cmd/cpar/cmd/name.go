package cmd

import (
	"fmt"

	"github.com/codebrainz/cpar/pkg/cpar"
)

func init() {
	RegisterCommand(&Command{
		Name:  "name",
		Short: "Find the CSS keyword for a colour",
		Long: `Look up the CSS colour keyword for a colour value.

The argument is parsed like "cpar parse" and the resulting value is
looked up in the keyword table. Values shared by several keywords
resolve to a single representative (e.g. #00ffffff reports "aqua").`,
		Usage: "cpar name <colour>",
		Run:   runName,
	})
}

func runName(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one colour string is required\n\nUsage: cpar name <colour>")
	}

	c, status := cpar.ParseValue(args[0])
	if status != cpar.StatusOK {
		return fmt.Errorf("%q: %s", args[0], status.Describe())
	}

	name, ok := cpar.NameOf(c)
	if !ok {
		return fmt.Errorf("%s has no CSS keyword", c)
	}
	fmt.Printf("%s %s\n", c, name)
	return nil
}
