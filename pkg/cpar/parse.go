package cpar

import (
	"math"
	"strconv"
	"strings"
)

// bufferLen is the capacity of the fixed working buffer. Inputs of this
// many raw bytes or more are rejected before any normalization, so the
// longest accepted colour string is bufferLen-1 bytes.
const bufferLen = 64

// ParseValue parses a subset of CSS colour syntax into a packed Color.
//
// The following forms are supported and are all equivalent
// (fully-opaque red):
//
//   - #f00
//   - #ff0000
//   - #ff0000ff
//   - rgb(255,0,0)
//   - rgba(255,0,0,1)
//   - red
//
// Whitespace is ignored and matching is case-insensitive. If no other
// syntax is recognized the string is looked up in the table of CSS
// colour names. The returned Color is only meaningful when the status
// is StatusOK.
func ParseValue(s string) (Color, Status) {
	if s == "" {
		return 0, StatusInvalidParameter
	}
	if len(s) >= bufferLen {
		return 0, StatusTooBig
	}

	// Copy non-whitespace as lower-case into a fixed working buffer.
	var buf [bufferLen]byte
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSpace(c) {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[n] = c
		n++
	}
	norm := string(buf[:n])

	switch {
	case strings.HasPrefix(norm, "#"):
		return parseHex(norm[1:])
	case strings.HasPrefix(norm, "rgb("):
		return parseFunctional(norm[len("rgb("):], 3)
	case strings.HasPrefix(norm, "rgba("):
		return parseFunctional(norm[len("rgba("):], 4)
	default:
		return colorFromName(norm)
	}
}

// Parse is like ParseValue but reports failure as a *ParseError.
func Parse(s string) (Color, error) {
	c, status := ParseValue(s)
	if status != StatusOK {
		return 0, &ParseError{Input: s, Status: status}
	}
	return c, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// parseHex parses the digits following '#'. Exactly 3, 6 or 8 digits are
// accepted; in the 3-digit form each digit is doubled and in the 3- and
// 6-digit forms alpha is forced to ff.
func parseHex(digits string) (Color, Status) {
	var rr, gg, bb, aa string
	switch len(digits) {
	case 3:
		rr = digits[0:1] + digits[0:1]
		gg = digits[1:2] + digits[1:2]
		bb = digits[2:3] + digits[2:3]
		aa = "ff"
	case 6:
		rr, gg, bb, aa = digits[0:2], digits[2:4], digits[4:6], "ff"
	case 8:
		rr, gg, bb, aa = digits[0:2], digits[2:4], digits[4:6], digits[6:8]
	default:
		return 0, StatusSyntaxError
	}

	var ch [4]uint8
	for i, s := range []string{rr, gg, bb, aa} {
		v, status := hexByteValue(s)
		if status != StatusOK {
			return 0, status
		}
		ch[i] = v
	}
	return RGBA(ch[0], ch[1], ch[2], ch[3]), StatusOK
}

// hexByteValue strictly parses a two-digit hexadecimal byte.
func hexByteValue(s string) (uint8, Status) {
	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, StatusInvalidNumber
	}
	if v < 0 || v > 255 {
		return 0, StatusNumberRange
	}
	return uint8(v), StatusOK
}

// parseFunctional parses the remainder of an rgb( or rgba( form. The
// content must end with ')' and contain exactly ncomp comma-separated
// components; empty components are skipped, so stray commas reduce the
// count rather than producing empty tokens.
func parseFunctional(content string, ncomp int) (Color, Status) {
	if len(content) == 0 || content[len(content)-1] != ')' {
		return 0, StatusSyntaxError
	}
	content = content[:len(content)-1]

	toks := make([]string, 0, 4)
	for _, tok := range strings.Split(content, ",") {
		if tok != "" {
			toks = append(toks, tok)
		}
	}
	if len(toks) != ncomp {
		return 0, StatusSyntaxError
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, status := parseChannel(toks[i])
		if status != StatusOK {
			return 0, status
		}
		ch[i] = v
	}

	a := uint8(0xFF)
	if ncomp == 4 {
		v, status := parseAlphaChannel(toks[3])
		if status != StatusOK {
			return 0, status
		}
		a = v
	}
	return RGBA(ch[0], ch[1], ch[2], a), StatusOK
}

// parseChannel parses one red, green or blue component: a base-10
// integer in [0,255], optionally suffixed with '%' in which case the
// value is rescaled from the 0-100 range to 0-255.
func parseChannel(tok string) (uint8, Status) {
	percent := false
	if strings.HasSuffix(tok, "%") {
		percent = true
		tok = tok[:len(tok)-1]
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, StatusInvalidNumber
	}
	if v < 0 || v > 255 {
		return 0, StatusNumberRange
	}
	if percent {
		return uint8(v * 255 / 100), StatusOK
	}
	return uint8(v), StatusOK
}

// parseAlphaChannel parses the rgba alpha component, a float in
// [0.0,1.0], and scales it to a byte. The scale truncates, so 0.5
// stores 0x7f.
func parseAlphaChannel(tok string) (uint8, Status) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(f) {
		return 0, StatusInvalidNumber
	}
	if f < 0 || f > 1 {
		return 0, StatusNumberRange
	}
	return uint8(f * 255), StatusOK
}
