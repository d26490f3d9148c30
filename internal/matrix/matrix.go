// Package matrix implements the logical framebuffer for an addressable RGB
// LED grid: mapping of grid coordinates onto the physical chain, brightness
// and gamma post-processing, channel reordering, and the frame lifecycle
// that decides when pixel writes reach hardware.
//
// A Matrix is owned by a single goroutine. Show and EndFrame may block for
// the duration of the hardware transfer; callers in multi-goroutine hosts
// must serialize access themselves.
package matrix

import (
	"errors"
	"fmt"
)

// Version is reported by LibraryVersion.
const Version = "0.4.1"

// DefaultBrightness is applied on Init.
const DefaultBrightness uint8 = 255

var (
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")
	ErrInvalidColorOrder = errors.New("matrix: invalid color order")
	ErrOutOfRange        = errors.New("matrix: coordinate out of range")
	ErrNotInitialized    = errors.New("matrix: not initialized")
)

// Dimensions is the immutable size of a matrix, fixed at Init.
type Dimensions struct {
	Width  int
	Height int
	Total  int
}

// NewDimensions validates and builds a Dimensions value.
func NewDimensions(w, h int) (Dimensions, error) {
	if w <= 0 || h <= 0 {
		return Dimensions{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return Dimensions{Width: w, Height: h, Total: w * h}, nil
}

type frameState int

const (
	frameIdle frameState = iota
	frameBuffering
)

// Matrix owns the pixel buffer for one LED chain. Mutators (SetPixelAt,
// Fill, Clear) touch only the logical buffer; Show and EndFrame are the
// only operations that change physical light output.
type Matrix struct {
	transport Transport
	layout    Layout
	dims      Dimensions
	buf       []Color
	wire      []byte

	brightness uint8
	gamma      bool
	order      ColorOrder
	fps        int

	state       frameState
	initialized bool
}

// Option configures a Matrix at construction time.
type Option func(*Matrix)

// WithLayout selects the coordinate mapping. Default is RowMajor.
func WithLayout(l Layout) Option {
	return func(m *Matrix) {
		if l != nil {
			m.layout = l
		}
	}
}

// WithColorOrder selects the physical channel order. Default is OrderRGB.
func WithColorOrder(o ColorOrder) Option {
	return func(m *Matrix) {
		if o.valid() {
			m.order = o
		}
	}
}

// WithGammaCorrection enables the gamma step at flush time.
func WithGammaCorrection(enabled bool) Option {
	return func(m *Matrix) { m.gamma = enabled }
}

// New builds an uninitialized Matrix over the given transport. Call Init
// before writing pixels.
func New(t Transport, opts ...Option) *Matrix {
	m := &Matrix{
		transport:  t,
		layout:     RowMajor{},
		brightness: DefaultBrightness,
		order:      OrderRGB,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init allocates the pixel buffer, zeroed, and opens the transport on the
// given data pin. Brightness resets to DefaultBrightness. Re-init is
// allowed: the previous transport handle is closed before reopening, and
// prior buffer contents are discarded.
func (m *Matrix) Init(dataPin int, dims Dimensions) error {
	if dims.Width <= 0 || dims.Height <= 0 || dims.Total != dims.Width*dims.Height {
		return fmt.Errorf("%w: %dx%d (total %d)", ErrInvalidDimensions, dims.Width, dims.Height, dims.Total)
	}
	if m.initialized {
		m.initialized = false
		if err := m.transport.Close(); err != nil {
			return fmt.Errorf("matrix: close transport: %w", err)
		}
	}
	if err := m.transport.Open(dataPin, dims.Total); err != nil {
		return fmt.Errorf("matrix: open transport: %w", err)
	}
	m.dims = dims
	m.buf = make([]Color, dims.Total)
	m.wire = make([]byte, dims.Total*3)
	m.brightness = DefaultBrightness
	m.state = frameIdle
	m.initialized = true
	return nil
}

// Close releases the transport. The matrix reports uninitialized afterwards
// and can be re-initialized with Init.
func (m *Matrix) Close() error {
	if !m.initialized {
		return nil
	}
	m.initialized = false
	m.state = frameIdle
	if err := m.transport.Close(); err != nil {
		return fmt.Errorf("matrix: close transport: %w", err)
	}
	return nil
}

// Initialized reports whether Init succeeded and Close has not been called.
func (m *Matrix) Initialized() bool { return m.initialized }

// IsValidCoord reports whether (x, y) lies inside the grid.
func (m *Matrix) IsValidCoord(x, y int) bool {
	return x >= 0 && x < m.dims.Width && y >= 0 && y < m.dims.Height
}

// CoordsToIndex maps a grid coordinate to its physical chain index using
// the configured layout. Returns -1 for out-of-range coordinates.
func (m *Matrix) CoordsToIndex(x, y int) int {
	if !m.IsValidCoord(x, y) {
		return -1
	}
	return m.layout.Index(x, y, m.dims.Width, m.dims.Height)
}

// IndexToCoords is the inverse of CoordsToIndex. Returns (-1, -1) for
// out-of-range indices.
func (m *Matrix) IndexToCoords(index int) (x, y int) {
	if index < 0 || index >= m.dims.Total {
		return -1, -1
	}
	return m.layout.Coords(index, m.dims.Width, m.dims.Height)
}

// SetPixelAt writes a color at a grid coordinate. Out-of-range coordinates
// return ErrOutOfRange and leave the buffer untouched.
func (m *Matrix) SetPixelAt(x, y int, c Color) error {
	if !m.IsValidCoord(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfRange, x, y, m.dims.Width, m.dims.Height)
	}
	m.buf[m.layout.Index(x, y, m.dims.Width, m.dims.Height)] = c
	return nil
}

// SetPixelByIndex writes a color directly at a physical chain index.
func (m *Matrix) SetPixelByIndex(index int, c Color) error {
	if index < 0 || index >= m.dims.Total {
		return fmt.Errorf("%w: index %d of %d", ErrOutOfRange, index, m.dims.Total)
	}
	m.buf[index] = c
	return nil
}

// PixelAt returns the color at a grid coordinate. Out-of-range reads return
// the zero Color: a read is non-destructive, so it is not worth failing a
// render loop over.
func (m *Matrix) PixelAt(x, y int) Color {
	if !m.IsValidCoord(x, y) {
		return Color{}
	}
	return m.buf[m.layout.Index(x, y, m.dims.Width, m.dims.Height)]
}

// PixelByIndex returns the color at a physical chain index, or the zero
// Color when out of range.
func (m *Matrix) PixelByIndex(index int) Color {
	if index < 0 || index >= m.dims.Total {
		return Color{}
	}
	return m.buf[index]
}

// Fill sets every pixel in the buffer to c.
func (m *Matrix) Fill(c Color) {
	for i := range m.buf {
		m.buf[i] = c
	}
}

// Clear sets every pixel to black. Equivalent to Fill(Color{}).
func (m *Matrix) Clear() { m.Fill(Color{}) }

// Show flushes the buffer to hardware: brightness scaling, then gamma if
// enabled, then channel reordering, then one Transmit. It is a no-op on an
// uninitialized matrix, and is deferred while a frame bracket is open. The
// buffer is never modified by Show, so retrying after a transport failure
// is safe.
func (m *Matrix) Show() error {
	if !m.initialized || m.state == frameBuffering {
		return nil
	}
	return m.flush()
}

// StartFrame opens a frame bracket: subsequent Show calls are deferred
// until EndFrame so a multi-pixel update reaches the LEDs as one transmit.
// Calling StartFrame while a bracket is open is a no-op; brackets do not
// nest.
func (m *Matrix) StartFrame() {
	if m.state == frameIdle {
		m.state = frameBuffering
	}
}

// EndFrame closes the bracket and performs the single deferred flush.
// Calling EndFrame without an open bracket is a no-op.
func (m *Matrix) EndFrame() error {
	if m.state != frameBuffering {
		return nil
	}
	m.state = frameIdle
	if !m.initialized {
		return nil
	}
	return m.flush()
}

// SetFrameRate records an advisory refresh cadence and forwards it to
// transports that pace themselves. It never forces a flush.
func (m *Matrix) SetFrameRate(fps int) {
	if fps <= 0 {
		return
	}
	m.fps = fps
	if p, ok := m.transport.(FramePacer); ok {
		p.SetFrameRate(fps)
	}
}

// FrameRate returns the advisory refresh cadence, 0 if unset.
func (m *Matrix) FrameRate() int { return m.fps }

// SetBrightness sets the global 0-255 scale factor applied at flush time.
// It is not baked into stored colors, so a change applies retroactively to
// the whole buffer on the next Show.
func (m *Matrix) SetBrightness(b uint8) { m.brightness = b }

// Brightness returns the global scale factor.
func (m *Matrix) Brightness() uint8 { return m.brightness }

// SetGammaCorrection toggles the gamma step at flush time.
func (m *Matrix) SetGammaCorrection(enabled bool) { m.gamma = enabled }

// GammaCorrection reports whether the gamma step runs.
func (m *Matrix) GammaCorrection() bool { return m.gamma }

// SetColorOrder sets the channel permutation applied at flush time. An
// invalid order returns ErrInvalidColorOrder and keeps the previous one.
func (m *Matrix) SetColorOrder(o ColorOrder) error {
	if !o.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidColorOrder, o)
	}
	m.order = o
	return nil
}

// Order returns the configured channel permutation.
func (m *Matrix) Order() ColorOrder { return m.order }

// Dimensions returns the size fixed at Init.
func (m *Matrix) Dimensions() Dimensions { return m.dims }

// Width returns the grid width in pixels.
func (m *Matrix) Width() int { return m.dims.Width }

// Height returns the grid height in pixels.
func (m *Matrix) Height() int { return m.dims.Height }

// TotalPixels returns Width*Height.
func (m *Matrix) TotalPixels() int { return m.dims.Total }

// DriverName identifies the underlying transport.
func (m *Matrix) DriverName() string { return m.transport.Name() }

// LibraryVersion returns the package version string.
func (m *Matrix) LibraryVersion() string { return Version }

// Layout returns the coordinate mapping in use.
func (m *Matrix) Layout() Layout { return m.layout }

func (m *Matrix) flush() error {
	for i, c := range m.buf {
		r := scale8(c.R, m.brightness)
		g := scale8(c.G, m.brightness)
		b := scale8(c.B, m.brightness)
		if m.gamma {
			r, g, b = gammaLUT[r], gammaLUT[g], gammaLUT[b]
		}
		w := m.order.apply(r, g, b)
		copy(m.wire[i*3:i*3+3], w[:])
	}
	if err := m.transport.Transmit(m.wire); err != nil {
		return fmt.Errorf("matrix: transmit: %w", err)
	}
	return nil
}

// scale8 scales one channel to v*s/255.
func scale8(v, s uint8) uint8 {
	return uint8(uint16(v) * uint16(s) / 255)
}
