package cpar

// Status is the outcome of a parse attempt. StatusOK is the only status
// that guarantees a usable colour value.
type Status int

const (
	// StatusOK indicates the colour string parsed successfully.
	StatusOK Status = iota
	// StatusInvalidParameter indicates the input was empty.
	StatusInvalidParameter
	// StatusTooBig indicates the input exceeds the working-buffer capacity.
	StatusTooBig
	// StatusInvalidNumber indicates a numeric component failed to parse.
	StatusInvalidNumber
	// StatusNumberRange indicates a numeric component parsed but is out of
	// its valid range, for example larger than 255 for RGB components.
	StatusNumberRange
	// StatusSyntaxError indicates any other problem with the structure of
	// the colour string, for example rgb(1,2) is missing a component.
	StatusSyntaxError
	// StatusNoColorName indicates the name-table lookup found no match.
	StatusNoColorName
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidParameter:
		return "invalid parameter"
	case StatusTooBig:
		return "too big"
	case StatusInvalidNumber:
		return "invalid number"
	case StatusNumberRange:
		return "number range"
	case StatusSyntaxError:
		return "syntax error"
	case StatusNoColorName:
		return "no color name"
	default:
		return "unknown"
	}
}

// translate is applied to every description literal before it is
// returned, so applications can localize messages without touching the
// parsing logic. The default is the identity function.
var translate = func(text string) string { return text }

// SetTranslator installs fn as the message translation hook. Passing nil
// restores the identity translator.
func SetTranslator(fn func(text string) string) {
	if fn == nil {
		fn = func(text string) string { return text }
	}
	translate = fn
}

// Describe returns a human-readable description of the status. Codes
// outside the known set yield the "no description" sentinel.
func (s Status) Describe() string {
	switch s {
	case StatusOK:
		return translate("success")
	case StatusInvalidParameter:
		return translate("invalid parameter")
	case StatusTooBig:
		return translate("color string too big")
	case StatusInvalidNumber:
		return translate("numeric component failed to parse")
	case StatusNumberRange:
		return translate("numeric component out-of-range")
	case StatusSyntaxError:
		return translate("syntax error")
	case StatusNoColorName:
		return translate("no matching color name")
	default:
		return translate("no description")
	}
}
