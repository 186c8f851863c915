package cmd

import (
	"fmt"

	"github.com/codebrainz/cpar/pkg/cpar"
)

func init() {
	RegisterCommand(&Command{
		Name:  "parse",
		Short: "Parse colour strings",
		Long: `Parse one or more colour strings and print their canonical form.

Each argument is parsed as a CSS colour (hex, rgb()/rgba() or keyword)
and printed as #rrggbbaa together with the individual channel values.
The first string that fails to parse stops processing and reports the
specific failure.`,
		Usage: "cpar parse <colour>...",
		Run:   runParse,
	})
}

func runParse(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one colour string is required\n\nUsage: cpar parse <colour>...")
	}

	for _, arg := range args {
		c, status := cpar.ParseValue(arg)
		if status != cpar.StatusOK {
			return fmt.Errorf("%q: %s", arg, status.Describe())
		}
		fmt.Printf("%-24q %s  r=%-3d g=%-3d b=%-3d a=%d\n",
			arg, c, c.Red(), c.Green(), c.Blue(), c.Alpha())
	}
	return nil
}
