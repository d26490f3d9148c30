package matrix

// Color is one logical RGB pixel. The pixel buffer always holds logical RGB;
// the physical channel order of the strip is applied at flush time only.
type Color struct {
	R, G, B uint8
}

// Pack encodes the color as 0x00RRGGBB.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a 0x00RRGGBB value into a Color. Pack and Unpack are exact
// inverses.
func Unpack(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}
