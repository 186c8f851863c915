// Package cpar parses CSS-style colour strings into packed 32-bit
// RGBA values.
//
// Three syntaxes are supported: hex notation (#f00, #ff0000,
// #ff0000ff), the rgb()/rgba() functional notation with decimal or
// percentage components, and the CSS colour keywords (red, steelblue,
// ...). Whitespace is ignored and matching is case-insensitive:
//
//	c, err := cpar.Parse("rgb( 255, 0, 0 )")
//	if err != nil {
//	    var perr *cpar.ParseError
//	    errors.As(err, &perr) // perr.Status says what went wrong
//	}
//	fmt.Println(c) // #ff0000ff
//
// Callers that want to branch on the failure kind without unwrapping
// errors can use ParseValue, which reports a Status directly:
//
//	c, status := cpar.ParseValue(input)
//	if status != cpar.StatusOK {
//	    log.Fatal(status.Describe())
//	}
//
// Input is limited to 63 bytes before whitespace removal; longer
// strings fail with StatusTooBig rather than being truncated.
//
// Note that rgba() alpha components are fractions: rgba(0,0,0,0.5)
// yields an alpha byte of 0x7f.
//
// Parsing reads no mutable shared state and is safe for concurrent
// use.
package cpar
