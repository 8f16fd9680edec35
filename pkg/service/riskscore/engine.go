// Package riskscore converts risk register entries into severity
// classifications, a 5x5 heat map grid, and portfolio summary metrics.
// All functions are pure: they allocate fresh output, never mutate their
// inputs, and degrade to empty/zero results on malformed records instead
// of returning errors.
package riskscore

import (
	"math"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
)

// GridSize is the number of rows and columns of the heat map grid
const GridSize = 5

// Cell is one position of the heat map grid. Row 0 holds impact 5 (highest
// impact at the top) and column 0 holds likelihood 1, matching conventional
// heat map presentation.
type Cell struct {
	Likelihood int
	Impact     int
	Risks      []*model.Risk
}

// Score returns the severity score of the cell position
func (c *Cell) Score() int {
	return c.Likelihood * c.Impact
}

// Grid is the full 5x5 heat map
type Grid [GridSize][GridSize]Cell

// Summary holds portfolio-level metrics over a risk list. The high/medium/
// low counts use the FilterBucket boundaries (high means inherent score
// of 15 or more).
type Summary struct {
	TotalRisks                  int     `json:"totalRisks"`
	HighRisks                   int     `json:"highRisks"`
	MediumRisks                 int     `json:"mediumRisks"`
	LowRisks                    int     `json:"lowRisks"`
	AverageControlEffectiveness float64 `json:"averageControlEffectiveness"`
}

// BuildHeatMapGrid aggregates risks into a 5x5 grid keyed by the
// (likelihood, impact) pair selected by the view. Records with a zero or
// out-of-range selected axis are skipped; the grid is always complete,
// even for an empty input list.
func BuildHeatMapGrid(risks []*model.Risk, view types.HeatMapView) Grid {
	var grid Grid
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			grid[row][col] = Cell{
				Likelihood: col + 1,
				Impact:     GridSize - row,
			}
		}
	}

	for _, risk := range risks {
		if risk == nil {
			continue
		}
		l, i := risk.Axes(view)
		if l == 0 || i == 0 {
			continue
		}
		row := GridSize - i
		col := l - 1
		if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
			continue
		}
		grid[row][col].Risks = append(grid[row][col].Risks, risk)
	}

	return grid
}

// SeverityBand classifies a likelihood x impact score with the 4-band
// display boundaries: <=4 low, <=9 moderate, <=14 high, else critical
func SeverityBand(score int) types.SeverityBand {
	switch {
	case score <= 4:
		return types.SeverityLow
	case score <= 9:
		return types.SeverityModerate
	case score <= 14:
		return types.SeverityHigh
	default:
		return types.SeverityCritical
	}
}

// FilterBucket classifies a likelihood x impact score with the coarse
// 3-band filter boundaries: <=6 low, <=14 medium, else high. This is a
// separate policy from SeverityBand and the two must not be conflated.
func FilterBucket(score int) types.FilterBucket {
	switch {
	case score <= 6:
		return types.FilterLow
	case score <= 14:
		return types.FilterMedium
	default:
		return types.FilterHigh
	}
}

// Summarize computes portfolio metrics over the inherent scores of the
// given risks. Control effectiveness is averaged only over records where
// it is defined; the average is 0 when no record defines it.
func Summarize(risks []*model.Risk) Summary {
	summary := Summary{TotalRisks: len(risks)}

	var effectivenessSum float64
	var effectivenessCount int

	for _, risk := range risks {
		if risk == nil {
			continue
		}

		score := risk.InherentScore()
		switch {
		case score >= 15:
			summary.HighRisks++
		case score >= 7:
			summary.MediumRisks++
		default:
			summary.LowRisks++
		}

		if risk.ControlEffectiveness != nil {
			effectivenessSum += *risk.ControlEffectiveness
			effectivenessCount++
		}
	}

	if effectivenessCount > 0 {
		avg := effectivenessSum / float64(effectivenessCount)
		// Round to 2 decimal places for stable presentation
		summary.AverageControlEffectiveness = math.Round(avg*100) / 100
	}

	return summary
}
