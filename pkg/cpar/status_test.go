package cpar

import (
	"strings"
	"testing"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "ok"},
		{StatusInvalidParameter, "invalid parameter"},
		{StatusTooBig, "too big"},
		{StatusInvalidNumber, "invalid number"},
		{StatusNumberRange, "number range"},
		{StatusSyntaxError, "syntax error"},
		{StatusNoColorName, "no color name"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusDescribe(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusOK, "success"},
		{StatusInvalidParameter, "invalid parameter"},
		{StatusTooBig, "color string too big"},
		{StatusInvalidNumber, "numeric component failed to parse"},
		{StatusNumberRange, "numeric component out-of-range"},
		{StatusSyntaxError, "syntax error"},
		{StatusNoColorName, "no matching color name"},
		{Status(99), "no description"},
		{Status(-1), "no description"},
	}
	for _, tt := range tests {
		if got := tt.status.Describe(); got != tt.want {
			t.Errorf("Status(%d).Describe() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSetTranslator(t *testing.T) {
	SetTranslator(strings.ToUpper)
	defer SetTranslator(nil)

	if got, want := StatusTooBig.Describe(), "COLOR STRING TOO BIG"; got != want {
		t.Errorf("translated Describe() = %q, want %q", got, want)
	}

	// nil restores the identity translator
	SetTranslator(nil)
	if got, want := StatusTooBig.Describe(), "color string too big"; got != want {
		t.Errorf("Describe() after reset = %q, want %q", got, want)
	}
}
