package matrix

import "math"

// GammaExponent linearizes perceived brightness on WS28xx-style LEDs.
const GammaExponent = 2.8

// gammaLUT[v] = round(255 * (v/255)^2.8). Applied after brightness scaling
// when gamma correction is enabled.
var gammaLUT = buildGammaLUT(GammaExponent)

func buildGammaLUT(exp float64) [256]uint8 {
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		lut[v] = uint8(math.Round(255 * math.Pow(float64(v)/255, exp)))
	}
	return lut
}
