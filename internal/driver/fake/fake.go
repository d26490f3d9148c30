// Package fake provides an in-memory matrix transport for tests and
// headless runs.
package fake

import "errors"

// Transport records every frame it is asked to transmit.
type Transport struct {
	Pin        int
	PixelCount int
	Frames     [][]byte
	FPS        int

	// Opens and Closes count lifecycle calls so tests can check for
	// leaked handles.
	Opens  int
	Closes int

	// FailOpen / FailTransmit, when set, are returned by the matching call.
	FailOpen     error
	FailTransmit error

	open bool
}

func New() *Transport { return &Transport{} }

func (t *Transport) Open(pin, pixelCount int) error {
	if t.FailOpen != nil {
		return t.FailOpen
	}
	t.Pin = pin
	t.PixelCount = pixelCount
	t.Frames = nil
	t.open = true
	t.Opens++
	return nil
}

func (t *Transport) Transmit(frame []byte) error {
	if !t.open {
		return errors.New("fake: transport not open")
	}
	if t.FailTransmit != nil {
		return t.FailTransmit
	}
	cp := make([]byte, len(frame))
	copy(cp, frame)
	t.Frames = append(t.Frames, cp)
	return nil
}

func (t *Transport) Close() error {
	t.open = false
	t.Closes++
	return nil
}

func (t *Transport) Name() string { return "fake" }

// SetFrameRate records the advisory rate forwarded by the matrix.
func (t *Transport) SetFrameRate(fps int) { t.FPS = fps }

// Last returns the most recently transmitted frame, or nil.
func (t *Transport) Last() []byte {
	if len(t.Frames) == 0 {
		return nil
	}
	return t.Frames[len(t.Frames)-1]
}
