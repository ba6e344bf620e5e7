// Package report renders execution records into human-readable artifacts.
package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"lifelab/internal/life"
)

// AliveChart renders the record's alive-percentage series as a PNG line
// chart. At least two steps are required to draw a line.
func AliveChart(rec life.Record) ([]byte, error) {
	if len(rec.AlivePercent) < 2 {
		return nil, fmt.Errorf("record %s has %d samples, need at least 2", rec.ID, len(rec.AlivePercent))
	}

	xs := make([]float64, len(rec.AlivePercent))
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Alive cells, %dx%d seed %d", rec.Rows, rec.Cols, rec.Seed),
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Step",
		},
		YAxis: chart.YAxis{
			Name: "Alive %",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "alive",
				XValues: xs,
				YValues: rec.AlivePercent,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
