// Package nrz drives WS2812-style NRZ LED chains over SPI using periph.io.
// The strict NRZ bit timing is synthesized by the nrzled device from the
// SPI clock, so no GPIO bit-banging is involved.
package nrz

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"
)

// refreshKHz is the nominal WS2812 refresh rate; the SPI clock is derived
// from it at 3x plus margin.
const refreshKHz = 800

// Transport writes frames through a periph.io nrzled device.
type Transport struct {
	// PortName selects the SPI port (e.g. "/dev/spidev0.0" or "SPI0.0").
	// Empty picks the first available port.
	PortName string

	port  spi.PortCloser
	dev   *nrzled.Dev
	count int
}

func New(portName string) *Transport { return &Transport{PortName: portName} }

// Open claims the SPI port and prepares the NRZ encoder for pixelCount
// LEDs. The data pin argument is ignored: on SPI the output pin is fixed by
// the port (MOSI).
func (t *Transport) Open(pin, pixelCount int) error {
	if pixelCount <= 0 {
		return fmt.Errorf("nrz: invalid pixel count %d", pixelCount)
	}
	if err := t.Close(); err != nil {
		return err
	}
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("nrz: host init: %w", err)
	}
	port, err := spireg.Open(t.PortName)
	if err != nil {
		return fmt.Errorf("nrz: open spi port %q: %w", t.PortName, err)
	}
	opts := nrzled.Opts{
		NumPixels: pixelCount,
		Channels:  3,
		Freq:      ((refreshKHz * 3) + 100) * physic.KiloHertz,
	}
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		_ = port.Close()
		return fmt.Errorf("nrz: nrzled: %w", err)
	}
	_ = dev.Halt()
	t.port = port
	t.dev = dev
	t.count = pixelCount
	return nil
}

// Transmit blocks until the whole frame is clocked out.
func (t *Transport) Transmit(frame []byte) error {
	if t.dev == nil {
		return fmt.Errorf("nrz: transport not open")
	}
	if len(frame) != t.count*3 {
		return fmt.Errorf("nrz: frame length %d, want %d", len(frame), t.count*3)
	}
	if _, err := t.dev.Write(frame); err != nil {
		return fmt.Errorf("nrz: write: %w", err)
	}
	return nil
}

func (t *Transport) Close() error {
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	t.dev = nil
	if err != nil {
		return fmt.Errorf("nrz: close spi port: %w", err)
	}
	return nil
}

func (t *Transport) Name() string { return "nrzled-spi" }
