package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColorOrder(t *testing.T) {
	valid := map[string]ColorOrder{
		"RGB": OrderRGB,
		"GRB": OrderGRB,
		"BGR": OrderBGR,
		"RBG": OrderRBG,
		"GBR": OrderGBR,
		"BRG": OrderBRG,
		"grb": OrderGRB, // case-insensitive
	}
	for s, want := range valid {
		got, err := ParseColorOrder(s)
		assert.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	for _, s := range []string{"", "RGBW", "RRB", "XYZ", "rgb ", "RG"} {
		_, err := ParseColorOrder(s)
		assert.ErrorIs(t, err, ErrInvalidColorOrder, "%q must be rejected", s)
	}
}

func TestOrderApplyPermutations(t *testing.T) {
	r, g, b := uint8(1), uint8(2), uint8(3)
	cases := map[ColorOrder][3]uint8{
		OrderRGB: {1, 2, 3},
		OrderGRB: {2, 1, 3},
		OrderBGR: {3, 2, 1},
		OrderRBG: {1, 3, 2},
		OrderGBR: {2, 3, 1},
		OrderBRG: {3, 1, 2},
	}
	for o, want := range cases {
		assert.Equal(t, want, o.apply(r, g, b), o.String())
	}
}

func TestGammaLUTShape(t *testing.T) {
	assert.EqualValues(t, 0, gammaLUT[0])
	assert.EqualValues(t, 255, gammaLUT[255])
	assert.EqualValues(t, 37, gammaLUT[128], "2.8 gamma darkens midtones")
	for v := 1; v < 256; v++ {
		assert.GreaterOrEqual(t, gammaLUT[v], gammaLUT[v-1], "LUT must be monotonic")
	}
}
