package ui

import (
	"github.com/guptarohit/asciigraph"
)

const traceLen = 120

// trace keeps a short history of the pointer spring's x axis against its
// target so overshoot and settling are visible.
type trace struct {
	target []float64
	value  []float64
}

func (t *trace) push(target, value float64) {
	t.target = appendCapped(t.target, target)
	t.value = appendCapped(t.value, value)
}

func (t *trace) reset() {
	t.target = t.target[:0]
	t.value = t.value[:0]
}

func appendCapped(s []float64, v float64) []float64 {
	if len(s) == traceLen {
		copy(s, s[1:])
		s[len(s)-1] = v
		return s
	}
	return append(s, v)
}

func (t *trace) render(width, height int) string {
	if len(t.value) < 2 {
		return ""
	}
	if width < 10 {
		width = 10
	}
	if height < 2 {
		height = 2
	}
	return asciigraph.PlotMany(
		[][]float64{t.target, t.value},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(-1),
		asciigraph.UpperBound(1),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.SkyBlue),
		asciigraph.Caption("pointer x: target / spring"),
	)
}
