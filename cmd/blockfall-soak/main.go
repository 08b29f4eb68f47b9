package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the bag and the command stream.")
	dt := flag.Duration("dt", 16*time.Millisecond, "Simulated time per frame.")
	configPath := flag.String("config", "", "Path to a YAML configuration file.")
	logLevel := flag.String("log-level", "warn", "Log level (trace, debug, info, warn, error).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Seed = *seed
	cfg.LogLevel = *logLevel
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if *dt <= 0 {
		log.Fatalf("Invalid -dt %s: must be positive", *dt)
	}

	level, _ := cfg.Level()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	log.Println("Starting blockfall soak...")

	// 1. Setup game and scheduler
	tally := &Tally{}
	game := tetris.NewGame(
		tetris.WithRules(cfg.TetrisRules()),
		tetris.WithRandom(tetris.NewRandom(cfg.Seed)),
		tetris.WithLogger(logger),
		tetris.WithHandler(tally),
	)

	chaos := &ChaosSystem{
		Game:   game,
		Random: tetris.NewRandom(cfg.Seed + 1),
		Counts: make(map[tetris.Command]int),
	}
	scheduler := loop.NewScheduler(nil)
	scheduler.Register(chaos)
	scheduler.Register(&GravitySystem{Game: game})

	game.Start()

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		FrameStep:      *dt,
		Seed:           cfg.Seed,
		Rules:          game.Rules(),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running soak for %s at %s per frame...\n", *duration, *dt)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64
	step := dt.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(step)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.SimulatedTime = time.Duration(totalFrames) * *dt
	report.UpdateTime.Finalize()
	report.Tally = *tally
	report.Game = game.Stats()
	report.Commands = chaos.Counts
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	// 3. Generate report to console
	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
