package matrix

// Transport is the physical write side of a matrix: the driver for one LED
// chain. Implementations live under internal/driver. The matrix calls Open
// from Init and Transmit from Show/EndFrame; nothing else touches hardware.
type Transport interface {
	// Open claims the output for pixelCount LEDs on the given data pin.
	// Drivers whose pin is fixed by the bus (SPI) may ignore it.
	Open(pin, pixelCount int) error
	// Transmit pushes one frame, 3 bytes per pixel, already in wire order.
	// Transmit may block for the duration of the hardware transfer.
	Transmit(frame []byte) error
	// Close releases the output.
	Close() error
	// Name identifies the driver for diagnostics.
	Name() string
}

// FramePacer is implemented by transports that run their own refresh cycle
// and want the advisory target rate from Matrix.SetFrameRate.
type FramePacer interface {
	SetFrameRate(fps int)
}
