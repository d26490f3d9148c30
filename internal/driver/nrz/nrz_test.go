package nrz

import (
	"bytes"
	"testing"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/nrzled"
)

func TestDeviceOptsMatchChain(t *testing.T) {
	buf := bytes.Buffer{}
	o := nrzled.Opts{
		NumPixels: 4,
		Channels:  3,
		Freq:      ((refreshKHz * 3) + 100) * physic.KiloHertz,
	}
	d, err := nrzled.NewSPI(spitest.NewRecordRaw(&buf), &o)
	if err != nil {
		t.Fatal(err)
	}
	if got, expected := d.String(), "nrzled{recordraw}"; got != expected {
		t.Fatalf("\nGot:  %s\nWant: %s\n", got, expected)
	}
	if n, err := d.Write(make([]byte, 4*3)); n != 12 || err != nil {
		t.Fatalf("%d %v", n, err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected encoded NRZ bytes on the wire")
	}
}

func TestTransmitBeforeOpen(t *testing.T) {
	tr := New("")
	if err := tr.Transmit(make([]byte, 3)); err == nil {
		t.Fatal("expected error on closed transport")
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("close on unopened transport: %v", err)
	}
	if got := tr.Name(); got != "nrzled-spi" {
		t.Fatalf("name: %s", got)
	}
}

func TestOpenRejectsBadCount(t *testing.T) {
	tr := New("")
	if err := tr.Open(18, 0); err == nil {
		t.Fatal("expected error for zero pixel count")
	}
}
