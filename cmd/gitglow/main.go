package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/archieLa/gitglow/internal/config"
	"github.com/archieLa/gitglow/internal/driver/fake"
	"github.com/archieLa/gitglow/internal/driver/nrz"
	"github.com/archieLa/gitglow/internal/driver/term"
	"github.com/archieLa/gitglow/internal/graph"
	"github.com/archieLa/gitglow/internal/matrix"
	"github.com/archieLa/gitglow/internal/platform"
	"github.com/archieLa/gitglow/internal/platform/host"
)

func main() {
	var (
		configPath = flag.String("config", "gitglow.yaml", "path to config file")
		driver     = flag.String("driver", "", "override driver: nrz | term | fake")
		settings   = flag.String("settings", "gitglow-settings.yaml", "path to persisted key/value settings")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config ----
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
		cfg = config.Default()
	}
	if *driver != "" {
		cfg.Driver = *driver
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(lvl)
	}

	// ---- Platform capabilities available on this host ----
	plat := platform.Platform{
		Storage: host.Storage{},
		System:  host.NewSystem(),
		Log:     host.Logger{L: log.Logger},
		Config:  host.KVStore{Path: *settings},
		Info:    host.Info{},
	}

	// ---- Matrix ----
	m, err := buildMatrix(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("matrix init failed")
	}
	defer m.Close()

	log.Info().
		Int("width", m.Width()).
		Int("height", m.Height()).
		Str("driver", m.DriverName()).
		Str("layout", m.Layout().Name()).
		Str("platform", plat.Info.PlatformName()).
		Str("chip", plat.Info.ChipID()).
		Str("version", m.LibraryVersion()).
		Msg("gitglow starting")

	weeks := demoWeeks(m.Width(), m.Height())
	if err := graph.Draw(m, weeks); err != nil {
		log.Error().Err(err).Msg("initial draw failed")
		return
	}

	fps := cfg.Matrix.FPS
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			// Scroll the demo history one week per tick.
			weeks = append(weeks[1:], weeks[0])
			if err := graph.Draw(m, weeks); err != nil {
				log.Error().Err(err).Msg("frame draw failed")
			}
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			m.Clear()
			if err := m.Show(); err != nil {
				log.Error().Err(err).Msg("final clear failed")
			}
			return
		}
	}
}

func buildMatrix(cfg *config.Config) (*matrix.Matrix, error) {
	var t matrix.Transport
	switch cfg.Driver {
	case "nrz":
		t = nrz.New(cfg.SPIDev)
	case "fake":
		t = fake.New()
	default:
		t = term.New()
	}

	opts := []matrix.Option{matrix.WithGammaCorrection(cfg.Matrix.Gamma)}
	if cfg.Matrix.Serpentine {
		opts = append(opts, matrix.WithLayout(matrix.Serpentine{}))
	}
	if cfg.Matrix.ColorOrder != "" {
		o, err := matrix.ParseColorOrder(cfg.Matrix.ColorOrder)
		if err != nil {
			return nil, err
		}
		opts = append(opts, matrix.WithColorOrder(o))
	}

	m := matrix.New(t, opts...)
	dims, err := matrix.NewDimensions(cfg.Matrix.Width, cfg.Matrix.Height)
	if err != nil {
		return nil, err
	}
	if err := m.Init(cfg.Matrix.Pin, dims); err != nil {
		return nil, err
	}
	m.SetBrightness(cfg.Matrix.Brightness)
	m.SetFrameRate(cfg.Matrix.FPS)
	return m, nil
}

// demoWeeks fabricates a deterministic contribution history so the board
// shows something before a data source is wired in.
func demoWeeks(w, h int) [][]int {
	weeks := make([][]int, w)
	for i := range weeks {
		days := make([]int, h)
		for d := range days {
			days[d] = (i*7 + d*3) % 12
		}
		weeks[i] = days
	}
	return weeks
}
