package engine

import (
	"punchout/experiments/metrics"
	"punchout/meta"
)

const MaxSteps = meta.MAX_STEPS

const (
	WinnerLittleMac = "little_mac"
	WinnerOpponent  = "opponent"
)

type Engine interface {
	// Run plays a bout till a knockout or a max number of steps is reached
	Run() (winner string, boutMetric metrics.BoutMetric, stepMetrics []metrics.StepMetric)
}
