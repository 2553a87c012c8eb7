package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/asteroids/internal/audio"
	"github.com/vovakirdan/asteroids/internal/config"
	"github.com/vovakirdan/asteroids/internal/core"
	"github.com/vovakirdan/asteroids/internal/games/asteroids"
	"github.com/vovakirdan/asteroids/internal/logging"
	"github.com/vovakirdan/asteroids/internal/storage"
)

// app bundles what every command sets up from the global flags.
type app struct {
	cfg    config.AsteroidsConfig
	logger *log.Logger
	store  *storage.Store
	sound  *audio.SoundManager

	logCloser io.Closer
}

// setupOptions selects the optional parts of the app.
type setupOptions struct {
	quietLog bool // Discard logs unless --log-file is set (alt-screen modes)
	store    bool
	sound    bool
}

// newApp loads config, builds the logger and opens storage and audio.
// Only a bad config or log setting is fatal; storage and audio degrade.
func newApp(opts setupOptions) (*app, error) {
	logger, closer, err := logging.New(logging.Options{
		Level: flagLogLevel,
		File:  flagLogFile,
		Quiet: opts.quietLog,
	})
	if err != nil {
		return nil, err
	}
	a := &app{logger: logger, logCloser: closer}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	} else if flagDifficulty != "" {
		a.Close()
		return nil, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	a.cfg = cfg
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	if opts.store {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Continue without storage - game still works
			logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		} else {
			a.store = store
		}
	}

	if opts.sound {
		a.sound = audio.NewSoundManager(cfg.Audio)
		if err := a.sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silent", "error", err)
		}
	}

	return a, nil
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// newGame creates a game wired to the store and logger.
func (a *app) newGame() *asteroids.Game {
	var keeper asteroids.ScoreKeeper
	if a.store != nil {
		keeper = a.store
	}
	g := asteroids.New(a.cfg, keeper)
	g.OnPersistError(func(err error) {
		a.logger.Warn("high score not persisted", "error", err)
	})
	return g
}

// Close releases audio, storage and the log file. Safe to call twice.
func (a *app) Close() {
	if a.sound != nil {
		a.sound.Cleanup()
		a.sound = nil
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing scores database", "error", err)
		}
		a.store = nil
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}
