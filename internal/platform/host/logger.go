package host

import "github.com/rs/zerolog"

// Logger adapts a zerolog logger to the platform logging contract.
type Logger struct {
	L zerolog.Logger
}

func (l Logger) Info(msg string)  { l.L.Info().Msg(msg) }
func (l Logger) Error(msg string) { l.L.Error().Msg(msg) }
func (l Logger) Debug(msg string) { l.L.Debug().Msg(msg) }
