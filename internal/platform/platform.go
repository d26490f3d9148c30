// Package platform declares the host capability contracts an application
// composes around the matrix: network, web server, storage, HTTP client,
// timing and power, logging, persisted configuration, and hardware
// identity. Each concern is its own small interface so targets can provide
// and tests can substitute them independently. The matrix core never
// depends on any of these.
package platform

import "time"

// Network manages the device's WiFi link.
type Network interface {
	Connect(ssid, password string) error
	StartHotspot(ssid, password string) error
	Connected() bool
	IPAddress() string
}

// Handler maps a request body to a response body.
type Handler func(body string) string

// WebServer serves the device's configuration endpoints.
type WebServer interface {
	Start(port int) error
	Stop() error
	Handle(path string, h Handler)
}

// Storage is flat file access on the device filesystem.
type Storage interface {
	WriteFile(path, content string) error
	ReadFile(path string) (string, error)
	FileExists(path string) bool
}

// HTTPClient issues blocking requests. headers is a newline-separated
// "Key: Value" list and may be empty.
type HTTPClient interface {
	Get(url, headers string) (string, error)
	Post(url, body, headers string) (string, error)
}

// System covers timing and power control.
type System interface {
	Delay(d time.Duration)
	Millis() uint32
	Restart()
	DeepSleep(d time.Duration)
}

// Logger is the leveled logging surface handed to device components.
type Logger interface {
	Info(msg string)
	Error(msg string)
	Debug(msg string)
}

// ConfigStore persists string key/value settings across restarts.
type ConfigStore interface {
	Save(key, value string) error
	Load(key, fallback string) string
	Clear() error
}

// HardwareInfo reports device identity and health.
type HardwareInfo interface {
	PlatformName() string
	ChipID() string
	FreeHeap() uint64
	CPUFrequency() float64
}

// Platform bundles the capability sets for an application to carry around.
// Fields a target does not provide stay nil.
type Platform struct {
	Network Network
	Server  WebServer
	Storage Storage
	HTTP    HTTPClient
	System  System
	Log     Logger
	Config  ConfigStore
	Info    HardwareInfo
}
