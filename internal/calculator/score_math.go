package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ClampScore bounds a raw score to the [0,100] scale every engine component
// reports on.
func ClampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// RoundScore clamps and rounds to the integer score callers persist.
func RoundScore(v float64) int {
	return int(math.Round(ClampScore(v)))
}

// Normalize maps value into [0,1] where cap represents "as good as it gets".
func Normalize(value, cap float64) float64 {
	return math.Min(value/cap, 1)
}

// InverseNormalize maps value into [0,1] where 0 occurrences of a bad thing
// scores 1 and cap-or-more occurrences scores 0.
func InverseNormalize(value, cap float64) float64 {
	return math.Max(0, 1-value/cap)
}

type ScoreSummary struct {
	Mean   float64
	Median float64
	Stdev  float64
	Min    float64
	Max    float64
}

// SummarizeScores computes distribution stats for a batch of scores. Used by
// batch assessment output, not by the per-call scoring paths.
func SummarizeScores(scores []int) (*ScoreSummary, error) {
	if len(scores) < 2 {
		return nil, fmt.Errorf("cannot summarize < 2 scores")
	}
	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = float64(s)
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median: %w", err)
	}
	stdev, err := stats.StandardDeviationSample(values)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stdev: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, err
	}

	return &ScoreSummary{
		Mean:   mean,
		Median: median,
		Stdev:  stdev,
		Min:    min,
		Max:    max,
	}, nil
}
