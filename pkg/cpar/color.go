package cpar

import "image/color"

// Color is a 32-bit colour stored as RGBA (0xRRGGBBAA).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Red returns the red component.
func (c Color) Red() uint8 { return uint8(c >> 24) }

// Green returns the green component.
func (c Color) Green() uint8 { return uint8(c >> 16) }

// Blue returns the blue component.
func (c Color) Blue() uint8 { return uint8(c >> 8) }

// Alpha returns the alpha component (0 transparent, 255 opaque).
func (c Color) Alpha() uint8 { return uint8(c) }

// NRGBA converts the colour to the standard library's non-premultiplied
// representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// String renders the colour in canonical #rrggbbaa form. The output
// round-trips through Parse.
func (c Color) String() string {
	buf := [9]byte{'#'}
	v := uint32(c)
	for i := 8; i >= 1; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}

const hexDigits = "0123456789abcdef"

// Common colours.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0x000000FF)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFF0000FF)
	ColorGreen       = Color(0x00FF00FF)
	ColorBlue        = Color(0x0000FFFF)
)
