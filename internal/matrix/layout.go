package matrix

// Layout maps grid coordinates onto positions along the physical LED chain.
// Index and Coords must be exact inverses for every in-range input; the
// matrix relies on that to keep coordinate and index addressing consistent.
type Layout interface {
	Index(x, y, w, h int) int
	Coords(index, w, h int) (x, y int)
	Name() string
}

// RowMajor wires every row left to right: index = y*w + x. This is the
// default layout.
type RowMajor struct{}

func (RowMajor) Index(x, y, w, h int) int { return y*w + x }

func (RowMajor) Coords(index, w, h int) (x, y int) { return index % w, index / w }

func (RowMajor) Name() string { return "row-major" }

// Serpentine wires alternate rows in opposite directions, the usual
// boustrophedon chain on LED panels: even rows run left to right, odd rows
// right to left.
type Serpentine struct{}

func (Serpentine) Index(x, y, w, h int) int {
	if y%2 == 1 {
		return y*w + (w - 1 - x)
	}
	return y*w + x
}

func (Serpentine) Coords(index, w, h int) (x, y int) {
	y = index / w
	x = index % w
	if y%2 == 1 {
		x = w - 1 - x
	}
	return x, y
}

func (Serpentine) Name() string { return "serpentine" }
