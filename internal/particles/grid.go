package particles

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type cellKey struct{ x, y, z int32 }

// SpatialHash buckets particle indices by cell. It is rebuilt every update
// and answers neighbourhood queries; nothing resolves collisions with it yet.
type SpatialHash struct {
	cellSize float32
	cells    map[cellKey][]int32
}

// NewSpatialHash creates an empty index with the given cell edge length.
func NewSpatialHash(cellSize float32) *SpatialHash {
	return &SpatialHash{cellSize: cellSize, cells: make(map[cellKey][]int32)}
}

// CellSize returns the cell edge length.
func (h *SpatialHash) CellSize() float32 { return h.cellSize }

func (h *SpatialHash) key(p mgl32.Vec3) cellKey {
	inv := 1 / h.cellSize
	return cellKey{
		x: int32(math.Floor(float64(p[0] * inv))),
		y: int32(math.Floor(float64(p[1] * inv))),
		z: int32(math.Floor(float64(p[2] * inv))),
	}
}

// Rebuild re-buckets every particle in the flat xyz positions buffer.
// Bucket slices are kept between rebuilds; buckets left empty are dropped.
func (h *SpatialHash) Rebuild(positions []float32) {
	for k, v := range h.cells {
		if len(v) == 0 {
			delete(h.cells, k)
			continue
		}
		h.cells[k] = v[:0]
	}
	for i := 0; i+2 < len(positions); i += 3 {
		k := h.key(mgl32.Vec3{positions[i], positions[i+1], positions[i+2]})
		h.cells[k] = append(h.cells[k], int32(i/3))
	}
}

// Len returns the number of non-empty cells.
func (h *SpatialHash) Len() int {
	n := 0
	for _, v := range h.cells {
		if len(v) > 0 {
			n++
		}
	}
	return n
}

// Neighbors appends to dst the indices of particles within radius of p and
// returns the extended slice.
func (h *SpatialHash) Neighbors(p mgl32.Vec3, radius float32, positions []float32, dst []int) []int {
	lo := h.key(p.Sub(mgl32.Vec3{radius, radius, radius}))
	hi := h.key(p.Add(mgl32.Vec3{radius, radius, radius}))
	r2 := radius * radius
	for x := lo.x; x <= hi.x; x++ {
		for y := lo.y; y <= hi.y; y++ {
			for z := lo.z; z <= hi.z; z++ {
				for _, idx := range h.cells[cellKey{x, y, z}] {
					j := int(idx) * 3
					d := mgl32.Vec3{positions[j], positions[j+1], positions[j+2]}.Sub(p)
					if d.Dot(d) <= r2 {
						dst = append(dst, int(idx))
					}
				}
			}
		}
	}
	return dst
}
