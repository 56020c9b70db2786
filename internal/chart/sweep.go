package chart

import (
	"fmt"

	"github.com/cxd309/aero-engine/internal/sweep"
)

// Metric selects a sweep column to plot against wing angle.
type Metric string

const (
	MetricTopSpeed    Metric = "top_speed"
	MetricDownforce   Metric = "downforce"
	MetricDrag        Metric = "drag"
	MetricCornerSpeed Metric = "corner_speed"
	MetricComparison  Metric = "comparison" // top and cornering speed together
)

// Metrics lists every metric in display order.
var Metrics = []Metric{MetricTopSpeed, MetricDownforce, MetricDrag, MetricCornerSpeed, MetricComparison}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// FromSweep builds a chart of metric against wing angle with one series per vehicle.
// MetricComparison yields two series per vehicle, "<name> top" and "<name> corner".
func FromSweep(log sweep.SweepLog, metric Metric) Chart {
	if metric == MetricComparison {
		return comparison(log)
	}
	c := Chart{XLabel: "Rear Wing Angle (degrees)"}
	pick := func(r sweep.SweepRow) float64 { return r.TopSpeedKmh }

	switch metric {
	case MetricTopSpeed:
		c.Title, c.YLabel = "Effect of Wing Angle on Top Speed", "Top Speed (km/h)"
	case MetricDownforce:
		c.Title, c.YLabel = "Effect of Wing Angle on Downforce", "Downforce (N)"
		pick = func(r sweep.SweepRow) float64 { return r.DownforceAtTop }
	case MetricDrag:
		c.Title, c.YLabel = "Effect of Wing Angle on Drag", "Drag (N)"
		pick = func(r sweep.SweepRow) float64 { return r.DragAtTop }
	case MetricCornerSpeed:
		c.Title = fmt.Sprintf("Effect of Wing Angle on Cornering Speed (r=%g m, mu=%g)", log.Turn.Radius, log.Turn.Mu)
		c.YLabel = "Cornering Speed (km/h)"
		pick = func(r sweep.SweepRow) float64 { return r.CornerSpeedKmh }
	}

	for _, s := range log.Series {
		c.Series = append(c.Series, seriesOf(s.Vehicle, s.Rows, pick))
	}
	return c
}

// comparison puts straight-line and cornering speed on one chart, in km/h.
func comparison(log sweep.SweepLog) Chart {
	c := Chart{
		Title:  fmt.Sprintf("Straight vs Cornering Speed (r=%g m, mu=%g)", log.Turn.Radius, log.Turn.Mu),
		XLabel: "Rear Wing Angle (degrees)",
		YLabel: "Speed (km/h)",
	}
	for _, s := range log.Series {
		c.Series = append(c.Series,
			seriesOf(s.Vehicle+" top", s.Rows, func(r sweep.SweepRow) float64 { return r.TopSpeedKmh }),
			seriesOf(s.Vehicle+" corner", s.Rows, func(r sweep.SweepRow) float64 { return r.CornerSpeedKmh }),
		)
	}
	return c
}

func seriesOf(name string, rows []sweep.SweepRow, pick func(sweep.SweepRow) float64) Series {
	line := Series{
		Name: name,
		X:    make([]float64, len(rows)),
		Y:    make([]float64, len(rows)),
	}
	for i, r := range rows {
		line.X[i] = r.Angle
		line.Y[i] = pick(r)
	}
	return line
}
