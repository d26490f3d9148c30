// Package term previews frames in the terminal through periph.io's console
// screen device, the same fallback the SPI renderer uses when no port is
// present. Configure the matrix with OrderRGB when previewing; the console
// has no channel wiring to compensate for.
package term

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"
)

// Transport renders each frame as a single row of ANSI color blocks.
type Transport struct {
	drawer display.Drawer
	img    *image.NRGBA
	count  int
}

func New() *Transport { return &Transport{} }

func (t *Transport) Open(pin, pixelCount int) error {
	if pixelCount <= 0 {
		return fmt.Errorf("term: invalid pixel count %d", pixelCount)
	}
	t.drawer = screen.New(pixelCount)
	t.img = image.NewNRGBA(image.Rect(0, 0, pixelCount, 1))
	t.count = pixelCount
	return nil
}

func (t *Transport) Transmit(frame []byte) error {
	if t.drawer == nil {
		return fmt.Errorf("term: transport not open")
	}
	if len(frame) != t.count*3 {
		return fmt.Errorf("term: frame length %d, want %d", len(frame), t.count*3)
	}
	for i := 0; i < t.count; i++ {
		o := i * 4
		t.img.Pix[o+0] = frame[i*3+0]
		t.img.Pix[o+1] = frame[i*3+1]
		t.img.Pix[o+2] = frame[i*3+2]
		t.img.Pix[o+3] = 0xFF
	}
	if err := t.drawer.Draw(t.drawer.Bounds(), t.img, image.Point{}); err != nil {
		return fmt.Errorf("term: draw: %w", err)
	}
	return nil
}

func (t *Transport) Close() error {
	if t.drawer == nil {
		return nil
	}
	err := t.drawer.Halt()
	t.drawer = nil
	return err
}

func (t *Transport) Name() string { return "console" }
