package ui

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/olivier-w/mercury/internal/frame"
	"github.com/olivier-w/mercury/internal/ripple"
)

var densityRamp = []byte(" .:-=+*#%@")

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// surfaceGain scales summed ripple heights before the soft clip.
const surfaceGain = 2.5

// canvas draws the ripple surface as a density heightmap and overlays the
// particle cloud as braille dots. Buffers are kept between frames.
type canvas struct {
	profile colorProfile

	heights []float64
	dots    []uint8
	sum     [][3]float32
	hits    []int32
}

func newCanvas(p colorProfile) *canvas {
	return &canvas{profile: p}
}

func (c *canvas) resize(cells int) {
	if cap(c.dots) < cells {
		c.dots = make([]uint8, cells)
		c.sum = make([][3]float32, cells)
		c.hits = make([]int32, cells)
	}
	c.dots = c.dots[:cells]
	c.sum = c.sum[:cells]
	c.hits = c.hits[:cells]
	clear(c.dots)
	clear(c.sum)
	clear(c.hits)
}

// render returns rows lines of cols cells each.
func (c *canvas) render(f *ripple.Field, fr frame.Frame, cols, rows int, mode ViewMode) string {
	if cols < 1 || rows < 1 {
		return ""
	}
	c.resize(cols * rows)
	if mode.showSurface() {
		c.heights = f.Sample(c.heights, cols, rows, 1, fr.Elapsed)
	}
	if mode.showParticles() {
		c.plot(fr, cols, rows)
	}

	var sb strings.Builder
	sb.Grow(cols * rows * 4)
	state := newANSIState(c.profile)
	for row := range rows {
		// Heightmap rows run bottom-up.
		src := (rows - 1 - row) * cols
		for col := range cols {
			i := row*cols + col
			if c.dots[i] != 0 {
				s := c.sum[i]
				n := float32(c.hits[i])
				state.set(&sb, fromUnit(s[0]/n, s[1]/n, s[2]/n))
				sb.WriteRune(rune(0x2800 + int(c.dots[i])))
				continue
			}
			if !mode.showSurface() {
				state.reset(&sb)
				sb.WriteByte(' ')
				continue
			}
			h := math.Tanh(c.heights[src+col] * surfaceGain)
			state.set(&sb, mercuryColor(h))
			sb.WriteByte(rampChar(h))
		}
		state.reset(&sb)
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// plot projects every particle into the braille dot grid.
func (c *canvas) plot(fr frame.Frame, cols, rows int) {
	dotCols, dotRows := cols*2, rows*4
	aspect := float32(dotCols) / float32(dotRows)
	n := len(fr.Positions) / 3
	for i := range n {
		p := mgl32.Vec3{fr.Positions[3*i], fr.Positions[3*i+1], fr.Positions[3*i+2]}
		w := fr.Model.Mul4x1(p.Vec4(1)).Vec3()
		x, y, ok := frame.Project(fr.View, aspect, w)
		if !ok || x < -1 || x >= 1 || y <= -1 || y > 1 {
			continue
		}
		dx := int((x + 1) / 2 * float32(dotCols))
		dy := int((1 - y) / 2 * float32(dotRows))
		if dx < 0 || dx >= dotCols || dy < 0 || dy >= dotRows {
			continue
		}
		cell := (dy/4)*cols + dx/2
		c.dots[cell] |= 1 << brailleBits[dx%2][dy%4]
		if len(fr.Colors) >= 3*i+3 {
			c.sum[cell][0] += fr.Colors[3*i]
			c.sum[cell][1] += fr.Colors[3*i+1]
			c.sum[cell][2] += fr.Colors[3*i+2]
		}
		c.hits[cell]++
	}
}

// rampChar picks a density glyph for a height in [-1, 1]. Flat surface maps
// to the middle of the ramp.
func rampChar(h float64) byte {
	t := (h + 1) / 2
	idx := int(t * float64(len(densityRamp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(densityRamp) {
		idx = len(densityRamp) - 1
	}
	return densityRamp[idx]
}
