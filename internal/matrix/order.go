package matrix

import (
	"fmt"
	"strings"
)

// ColorOrder names the physical channel wiring of the strip. WS2812 chains
// are typically GRB. The order is applied to the wire frame only; the
// logical buffer stays RGB.
type ColorOrder int

const (
	OrderRGB ColorOrder = iota
	OrderGRB
	OrderBGR
	OrderRBG
	OrderGBR
	OrderBRG
)

// orderPerms[o][i] selects which logical channel (0=R 1=G 2=B) lands in
// wire slot i.
var orderPerms = [...][3]int{
	OrderRGB: {0, 1, 2},
	OrderGRB: {1, 0, 2},
	OrderBGR: {2, 1, 0},
	OrderRBG: {0, 2, 1},
	OrderGBR: {1, 2, 0},
	OrderBRG: {2, 0, 1},
}

var orderNames = [...]string{
	OrderRGB: "RGB",
	OrderGRB: "GRB",
	OrderBGR: "BGR",
	OrderRBG: "RBG",
	OrderGBR: "GBR",
	OrderBRG: "BRG",
}

func (o ColorOrder) valid() bool { return o >= OrderRGB && o <= OrderBRG }

func (o ColorOrder) String() string {
	if !o.valid() {
		return fmt.Sprintf("ColorOrder(%d)", int(o))
	}
	return orderNames[o]
}

// apply permutes one logical RGB pixel into wire order.
func (o ColorOrder) apply(r, g, b uint8) [3]uint8 {
	p := orderPerms[o]
	ch := [3]uint8{r, g, b}
	return [3]uint8{ch[p[0]], ch[p[1]], ch[p[2]]}
}

// ParseColorOrder accepts the six permutations of "RGB", case-insensitive.
func ParseColorOrder(s string) (ColorOrder, error) {
	for o, name := range orderNames {
		if strings.EqualFold(s, name) {
			return ColorOrder(o), nil
		}
	}
	return OrderRGB, fmt.Errorf("%w: %q", ErrInvalidColorOrder, s)
}
