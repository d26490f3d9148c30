package host

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageRoundTrip(t *testing.T) {
	s := Storage{Base: t.TempDir()}

	assert.False(t, s.FileExists("token.txt"))
	require.NoError(t, s.WriteFile("token.txt", "ghp_abc123"))
	assert.True(t, s.FileExists("token.txt"))

	got, err := s.ReadFile("token.txt")
	require.NoError(t, err)
	assert.Equal(t, "ghp_abc123", got)

	_, err = s.ReadFile("missing.txt")
	assert.Error(t, err)
}

func TestKVStore(t *testing.T) {
	k := KVStore{Path: t.TempDir() + "/settings.yaml"}

	assert.Equal(t, "fallback", k.Load("wifi_ssid", "fallback"))

	require.NoError(t, k.Save("wifi_ssid", "workshop"))
	require.NoError(t, k.Save("github_user", "archie"))
	assert.Equal(t, "workshop", k.Load("wifi_ssid", "fallback"))
	assert.Equal(t, "archie", k.Load("github_user", ""))

	// Overwrite keeps other keys.
	require.NoError(t, k.Save("wifi_ssid", "home"))
	assert.Equal(t, "home", k.Load("wifi_ssid", ""))
	assert.Equal(t, "archie", k.Load("github_user", ""))

	require.NoError(t, k.Clear())
	assert.Equal(t, "fallback", k.Load("wifi_ssid", "fallback"))
	require.NoError(t, k.Clear(), "clearing an empty store is fine")
}

func TestSystemMillis(t *testing.T) {
	s := NewSystem()
	m1 := s.Millis()
	s.Delay(5 * time.Millisecond)
	m2 := s.Millis()
	assert.GreaterOrEqual(t, m2, m1)
	assert.GreaterOrEqual(t, m2-m1, uint32(4))
}

func TestSystemRestartUsesExit(t *testing.T) {
	var code = -1
	s := &System{start: time.Now(), exit: func(c int) { code = c }}
	s.Restart()
	assert.Equal(t, 0, code)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: zerolog.New(&buf)}

	l.Info("board ready")
	l.Error("transmit failed")
	l.Debug("frame 12")

	out := buf.String()
	assert.Contains(t, out, "board ready")
	assert.Contains(t, out, "transmit failed")
	assert.Contains(t, out, `"level":"error"`)
}

func TestInfo(t *testing.T) {
	i := Info{}
	assert.NotEmpty(t, i.PlatformName())
	assert.NotEmpty(t, i.ChipID())
	assert.Greater(t, i.FreeHeap(), uint64(0))
}
