package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetroku/session"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	MaxTurns int

	// Results
	Games          int
	LostGames      int
	Turns          int64
	Units          int64
	Score          Spread
	TotalTime      time.Duration
	TurnTime       Stats
	Scheduler      *session.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Observe counts cleared units. It is subscribed to the scheduler.
func (r *Report) Observe(e session.Event) {
	if c, ok := e.(session.Cleared); ok {
		r.Units += int64(len(c.Units))
	}
}

// AddGame records a finished or abandoned game.
func (r *Report) AddGame(g *session.Game) {
	r.Games++
	if g.Lost() {
		r.LostGames++
	}
	r.Turns += int64(g.Turn())
	r.Score.Add(g.Score())
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Spread tracks the range and mean of per-game values.
type Spread struct {
	Min, Max int
	total, n int
}

func (s *Spread) Add(v int) {
	if s.n == 0 || v < s.Min {
		s.Min = v
	}
	if s.n == 0 || v > s.Max {
		s.Max = v
	}
	s.total += v
	s.n++
}

func (s Spread) Avg() float64 {
	if s.n == 0 {
		return 0
	}
	return float64(s.total) / float64(s.n)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetroku Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **First Seed:** {{.Seed}}
- **Turn Limit:** {{if .MaxTurns}}{{.MaxTurns}}{{else}}none{{end}}

## Games
- **Games Played:** {{.Games}} ({{.LostGames}} lost)
- **Total Turns:** {{.Turns}}
- **Units Cleared:** {{.Units}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Turn Time (autoplayer + rules):**
  - **Avg:** {{.TurnTime.Avg}}
  - **Min:** {{.TurnTime.Min}}
  - **Max:** {{.TurnTime.Max}}
{{with .Scheduler}}
## Systems ({{.Turns}} turns, {{.AbortedTurns}} aborted)
| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} ({{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB)
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
