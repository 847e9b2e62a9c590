package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetroku/session"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed of the first game. Game n is dealt from seed+n.")
	maxTurns := flag.Int("max-turns", 10000, "Turns after which a game is abandoned, 0 for no limit.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting tetroku stress test...")

	// One scheduler for every game so its stats cover the whole run.
	scheduler := session.NewTurnScheduler()
	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		MaxTurns:       *maxTurns,
		GCPauseMetrics: *gcPauseMetrics,
		TurnTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	scheduler.Subscribe(report.Observe)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Autoplaying games for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			g := session.New(
				session.WithSeed(*seed+uint64(report.Games)),
				session.WithScheduler(scheduler),
			)
			auto := session.NewAutoplayer(g)

			for !g.Lost() && (*maxTurns <= 0 || g.Turn() < *maxTurns) && ctx.Err() == nil {
				turnStart := time.Now()
				if _, err := auto.Step(); err != nil {
					log.Fatalf("Game %d turn %d: %v", report.Games, g.Turn()+1, err)
				}
				report.TurnTime.Samples = append(report.TurnTime.Samples, time.Since(turnStart))
			}

			report.AddGame(g)
			if report.Games%100 == 0 {
				log.Printf("%d games played, %d turns\n", report.Games, report.Turns)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TurnTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Autoplay finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
