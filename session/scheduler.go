package session

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Turns           int64
	AbortedTurns    int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler resolves turns by running its systems in order.
type Scheduler struct {
	systems     []System
	systemStats []*systemStatsInternal
	listeners   []Listener
	turns       int64
	aborted     int64
}

// NewScheduler creates a scheduler with no systems.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: make([]System, 0),
	}
}

// NewTurnScheduler creates a scheduler with the systems that implement the
// standard rules, in the order they must run.
func NewTurnScheduler() *Scheduler {
	s := NewScheduler()
	s.Register(&PlaceSystem{})
	s.Register(&ClearSystem{})
	s.Register(&ScoreSystem{})
	s.Register(&DealSystem{})
	s.Register(&LossSystem{})
	s.Register(&SelectSystem{})
	return s
}

// Register appends a system.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Subscribe adds a listener for the events emitted by turns.
func (s *Scheduler) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Once runs every system over frame. If a system aborts the turn the
// remaining systems are skipped, queued commands are dropped and the abort
// error is returned.
func (s *Scheduler) Once(frame *Frame) error {
	s.turns++

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if frame.err != nil {
			s.aborted++
			frame.Commands.Reset()
			return frame.err
		}
	}

	frame.Commands.Flush(s.listeners)
	return nil
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:  len(s.systems),
		Turns:        s.turns,
		AbortedTurns: s.aborted,
		Systems:      make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
