package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/spectate"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file.")
	seed := flag.Uint64("seed", 0, "Bag shuffle seed. Zero picks a random seed.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug overlay.")
	spectateAddr := flag.String("spectate", "", "Serve spectator snapshots on this address, e.g. :8080.")
	logLevel := flag.String("log-level", "", "Log level (trace, debug, info, warn, error).")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "debug":
			cfg.DebugUI = *debug
		case "spectate":
			cfg.Spectate.Addr = *spectateAddr
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	level, _ := cfg.Level()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	var hub *spectate.Hub
	if cfg.Spectate.Addr != "" {
		hub = spectate.NewHub(logger.With().Str("component", "spectate").Logger())
		srv := &http.Server{Addr: cfg.Spectate.Addr, Handler: hub}
		go func() {
			logger.Info().Str("addr", cfg.Spectate.Addr).Msg("spectator server listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("spectator server failed")
			}
		}()
		defer func() {
			hub.Close()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	app := NewApp(cfg, logger, hub)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("game loop failed")
		os.Exit(1)
	}

	final := app.game.Score()
	logger.Info().
		Int("score", final.Score).
		Int("lines", final.Lines).
		Int("level", final.Level).
		Msg("bye")
}
