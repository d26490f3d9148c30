package matrix_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/archieLa/gitglow/internal/matrix"
)

var TestColorPacksToExpectedValue = []struct {
	C      Color
	Expect uint32
}{
	{Color{0, 0, 0}, 0x000000},
	{Color{255, 255, 255}, 0xFFFFFF},
	{Color{0x12, 0x34, 0x56}, 0x123456},
	{Color{22, 27, 34}, 0x161B22},  // board background
	{Color{57, 211, 83}, 0x39D353}, // level 4 green
	{Color{255, 0, 0}, 0xFF0000},
	{Color{0, 255, 0}, 0x00FF00},
	{Color{0, 0, 255}, 0x0000FF},
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for k, v := range TestColorPacksToExpectedValue {
		t.Run("Given Color"+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, v.C.Pack(), "should pack to 0x00RRGGBB")
			assert.Equal(t, v.C, Unpack(v.C.Pack()), "unpack(pack(c)) should be c")
		})
	}
}

func TestUnpackIgnoresHighByte(t *testing.T) {
	assert.Equal(t, Color{0x12, 0x34, 0x56}, Unpack(0xFF123456))
}

func TestPaletteLevels(t *testing.T) {
	assert.Equal(t, Background, NoContrib, "level 0 matches the background")
	// Greens get brighter with each level.
	levels := []Color{Level1, Level2, Level3, Level4}
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].G, levels[i-1].G, "level %d should be brighter than level %d", i+1, i)
	}
}
