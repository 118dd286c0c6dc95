package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/plus3/slotecs/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	capacity := flag.Int("capacity", 0, "Entity capacity of the storage. Overrides ECS_CAPACITY when set.")
	rate := flag.Float64("rate", 0.05, "Fraction of capacity created and destroyed each frame.")
	seed := flag.Int64("seed", 1, "Random seed for the churn pattern.")
	profileMode := flag.String("profile", "none", "Profile to record: cpu, mem or none.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := ecs.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if *capacity > 0 {
		cfg.Capacity = *capacity
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "none":
	default:
		logger.Fatal().Str("profile", *profileMode).Msg("unknown profile mode")
	}

	logger.Info().Msg("Starting ECS stress test...")

	components, tags := newRegistries()
	storage := ecs.NewStorage(components, tags, ecs.WithLogger(logger), ecs.WithConfig(cfg))
	ecs.LogComponents(&logger, storage, zerolog.InfoLevel)

	c := newChurn(storage, rand.New(rand.NewSource(*seed)), *rate)
	c.populate()
	logger.Info().Int("entities", storage.Len()).Int("capacity", storage.Capacity()).Msg("population complete")

	report := &Report{
		Duration:       *duration,
		Capacity:       storage.Capacity(),
		Rate:           *rate,
		Profile:        *profileMode,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", *duration).Msg("running churn")

	startTime := time.Now()
	deadline := startTime.Add(*duration)
	for time.Now().Before(deadline) {
		frameStart := time.Now()
		c.frame()
		report.FrameTime.Add(time.Since(frameStart))
		report.TotalFrames++
	}

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.collect(c)

	logger.Info().Int64("frames", report.TotalFrames).Msg("churn finished")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
