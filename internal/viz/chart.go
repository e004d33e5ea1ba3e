package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ioneq/internal/ioneq"
)

// StageChart renders one stage's fraction curve against the grid index.
func StageChart(label string, frac *ioneq.FractionTable, stage, width, height int) (string, error) {
	curve, err := frac.Stage(stage)
	if err != nil {
		return "", err
	}

	grid := frac.Temperature
	caption := fmt.Sprintf("%s fraction, log T = %.2f .. %.2f",
		label, math.Log10(grid[0]), math.Log10(grid[len(grid)-1]))

	graph := asciigraph.Plot(curve,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return graph, nil
}

// DominantStages lists, per temperature decade, the stage holding the
// largest fraction. Handy as a compact text summary for heavy elements.
func DominantStages(symbol string, frac *ioneq.FractionTable) string {
	var b strings.Builder
	lastStage := -1
	for t, row := range frac.Fractions {
		best, bestVal := 0, row[0]
		for i, v := range row {
			if v > bestVal {
				best, bestVal = i, v
			}
		}
		if best == lastStage {
			continue
		}
		lastStage = best
		fmt.Fprintf(&b, "log T %.2f: %s %d (%.1f%%)\n",
			math.Log10(frac.Temperature[t]), symbol, best+1, 100*bestVal)
	}
	return b.String()
}
