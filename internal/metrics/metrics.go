// Package metrics exposes Prometheus collectors for the puzzle engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PuzzlesGenerated counts generated puzzles by difficulty label.
	PuzzlesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudokugen_puzzles_generated_total",
		Help: "Puzzles generated, labeled by difficulty.",
	}, []string{"difficulty"})

	// GenerateDuration observes end-to-end puzzle generation latency.
	GenerateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudokugen_generate_duration_seconds",
		Help:    "Puzzle generation latency.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	// SolverNodes observes backtracking nodes visited per generation.
	SolverNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sudokugen_solver_nodes",
		Help:    "Backtracking search nodes visited per generation.",
		Buckets: prometheus.ExponentialBuckets(100, 4, 10),
	})

	// MovesChecked counts move validations by outcome.
	MovesChecked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudokugen_moves_checked_total",
		Help: "Player moves validated against the solution, by outcome.",
	}, []string{"outcome"})
)
