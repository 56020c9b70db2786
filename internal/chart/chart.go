// Package chart renders line charts of sweep results to a terminal screen.
package chart

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Series is one named line on a chart.
type Series struct {
	Name string
	X, Y []float64
}

// Chart is a titled set of series sharing both axes.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Marker runes and colours cycle per series.
var (
	markers = []rune{'*', '+', 'o', 'x', '#'}
	colors  = []tcell.Color{tcell.ColorBlue, tcell.ColorRed, tcell.ColorGreen, tcell.ColorYellow, tcell.ColorPurple}
)

const (
	leftMargin   = 10 // room for y tick labels
	topMargin    = 2  // title + blank
	bottomMargin = 3  // x ticks, x label, legend
)

var (
	styleText = tcell.StyleDefault
	styleAxis = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHint = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
)

// bounds is the data range mapped onto the plot area.
type bounds struct {
	xMin, xMax, yMin, yMax float64
}

func (c Chart) bounds() bounds {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, s := range c.Series {
		for i := range s.X {
			if i >= len(s.Y) || math.IsNaN(s.Y[i]) || math.IsInf(s.Y[i], 0) {
				continue
			}
			b.xMin = math.Min(b.xMin, s.X[i])
			b.xMax = math.Max(b.xMax, s.X[i])
			b.yMin = math.Min(b.yMin, s.Y[i])
			b.yMax = math.Max(b.yMax, s.Y[i])
		}
	}
	if math.IsInf(b.xMin, 1) {
		return bounds{0, 1, 0, 1}
	}
	// Widen flat ranges so a constant series still lands mid-plot.
	if b.xMax == b.xMin {
		b.xMin, b.xMax = b.xMin-1, b.xMax+1
	}
	if b.yMax == b.yMin {
		pad := math.Max(math.Abs(b.yMin)*0.05, 1)
		b.yMin, b.yMax = b.yMin-pad, b.yMax+pad
	}
	return b
}

// Draw renders c onto screen, clearing it first. It does not call Show.
func Draw(screen tcell.Screen, c Chart) {
	screen.Clear()
	w, h := screen.Size()

	drawText(screen, max(0, (w-len([]rune(c.Title)))/2), 0, styleText.Bold(true), c.Title)

	plotW := w - leftMargin - 1
	plotH := h - topMargin - bottomMargin - 1
	if plotW < 2 || plotH < 2 {
		drawText(screen, 0, 1, styleHint, "window too small")
		return
	}
	// (x0, y0) is the top-left cell of the plot area.
	x0, y0 := leftMargin, topMargin
	xAxisRow := y0 + plotH
	b := c.bounds()

	// Axes.
	for y := y0; y < xAxisRow; y++ {
		screen.SetContent(x0-1, y, '│', nil, styleAxis)
	}
	for x := x0; x < x0+plotW; x++ {
		screen.SetContent(x, xAxisRow, '─', nil, styleAxis)
	}
	screen.SetContent(x0-1, xAxisRow, '└', nil, styleAxis)

	// Ticks: min and max on each axis.
	drawText(screen, 0, y0, styleText, fmt.Sprintf("%*s", leftMargin-1, formatTick(b.yMax)))
	drawText(screen, 0, xAxisRow-1, styleText, fmt.Sprintf("%*s", leftMargin-1, formatTick(b.yMin)))
	drawText(screen, x0, xAxisRow+1, styleText, formatTick(b.xMin))
	xMaxLabel := formatTick(b.xMax)
	drawText(screen, x0+plotW-len(xMaxLabel), xAxisRow+1, styleText, xMaxLabel)
	drawText(screen, 0, 1, styleHint, c.YLabel)
	drawText(screen, max(x0, x0+(plotW-len([]rune(c.XLabel)))/2), xAxisRow+1, styleHint, c.XLabel)

	// Data points.
	for i, s := range c.Series {
		style := tcell.StyleDefault.Foreground(colors[i%len(colors)])
		marker := markers[i%len(markers)]
		for j := range s.X {
			if j >= len(s.Y) || math.IsNaN(s.Y[j]) || math.IsInf(s.Y[j], 0) {
				continue
			}
			col := x0 + scale(s.X[j], b.xMin, b.xMax, plotW-1)
			row := xAxisRow - 1 - scale(s.Y[j], b.yMin, b.yMax, plotH-1)
			screen.SetContent(col, row, marker, nil, style)
		}
	}

	// Legend.
	lx := x0
	for i, s := range c.Series {
		style := tcell.StyleDefault.Foreground(colors[i%len(colors)])
		screen.SetContent(lx, xAxisRow+2, markers[i%len(markers)], nil, style)
		lx = drawText(screen, lx+2, xAxisRow+2, styleText, s.Name) + 2
	}
}

// scale maps v in [lo, hi] to an integer cell offset in [0, cells].
func scale(v, lo, hi float64, cells int) int {
	n := int(math.Round((v - lo) / (hi - lo) * float64(cells)))
	return min(max(n, 0), cells)
}

// drawText writes s at (x, y) and returns the column after the last rune.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func formatTick(v float64) string {
	switch {
	case math.Abs(v) >= 1e4:
		return fmt.Sprintf("%.3g", v)
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
