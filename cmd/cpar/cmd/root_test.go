package cmd

import "testing"

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"parse", "name", "palette"} {
		cmd, ok := commands[name]
		if !ok {
			t.Errorf("command %q not registered", name)
			continue
		}
		if cmd.Run == nil || cmd.Short == "" || cmd.Usage == "" {
			t.Errorf("command %q is missing Run/Short/Usage", name)
		}
	}
}

func TestRunParseRejectsBadInput(t *testing.T) {
	if err := runParse(nil); err == nil {
		t.Error("runParse with no args should fail")
	}
	if err := runParse([]string{"rgb(256,0,0)"}); err == nil {
		t.Error("runParse with out-of-range colour should fail")
	}
}

func TestRunNameErrors(t *testing.T) {
	if err := runName(nil); err == nil {
		t.Error("runName with no args should fail")
	}
	if err := runName([]string{"#01020304"}); err == nil {
		t.Error("runName with an unnamed colour should fail")
	}
	if err := runName([]string{"not_a_color"}); err == nil {
		t.Error("runName with an unparsable colour should fail")
	}
}

func TestRunPaletteMissingFile(t *testing.T) {
	if err := runPalette(nil); err == nil {
		t.Error("runPalette with no args should fail")
	}
	if err := runPalette([]string{"/nonexistent/palette.yaml"}); err == nil {
		t.Error("runPalette with a missing file should fail")
	}
}
