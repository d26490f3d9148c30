// Package host implements the platform capability sets available on a
// regular POSIX host (Raspberry Pi, desktop): storage, key/value config,
// timing, logging and hardware identity. Network, web server and HTTP
// client contracts are platform-specific and left to the embedding
// application.
package host

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Storage reads and writes flat files, optionally relative to a base
// directory.
type Storage struct {
	Base string
}

func (s Storage) path(p string) string {
	if s.Base == "" {
		return p
	}
	return filepath.Join(s.Base, p)
}

func (s Storage) WriteFile(path, content string) error {
	if err := os.WriteFile(s.path(path), []byte(content), 0o644); err != nil {
		return fmt.Errorf("host: write %s: %w", path, err)
	}
	return nil
}

func (s Storage) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(s.path(path))
	if err != nil {
		return "", fmt.Errorf("host: read %s: %w", path, err)
	}
	return string(b), nil
}

func (s Storage) FileExists(path string) bool {
	_, err := os.Stat(s.path(path))
	return err == nil
}

// System implements timing and power control with host primitives. Restart
// exits the process and relies on the service manager to bring it back;
// deep sleep degrades to a plain sleep.
type System struct {
	start time.Time
	exit  func(int)
}

func NewSystem() *System {
	return &System{start: time.Now(), exit: os.Exit}
}

func (s *System) Delay(d time.Duration) { time.Sleep(d) }

// Millis returns milliseconds since the System was created, wrapping like
// an embedded millis() counter.
func (s *System) Millis() uint32 {
	return uint32(time.Since(s.start).Milliseconds())
}

func (s *System) Restart() { s.exit(0) }

func (s *System) DeepSleep(d time.Duration) { time.Sleep(d) }

// Info reports host identity using the Go runtime. CPUFrequency is not
// discoverable portably and reports 0.
type Info struct{}

func (Info) PlatformName() string { return runtime.GOOS + "/" + runtime.GOARCH }

func (Info) ChipID() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}

func (Info) FreeHeap() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapSys - ms.HeapAlloc
}

func (Info) CPUFrequency() float64 { return 0 }
