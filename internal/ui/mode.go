package ui

// ViewMode selects what the preview canvas draws.
type ViewMode int

const (
	ViewBoth ViewMode = iota
	ViewSurface
	ViewParticles
)

// Next cycles to the next view mode.
func (v ViewMode) Next() ViewMode {
	switch v {
	case ViewBoth:
		return ViewSurface
	case ViewSurface:
		return ViewParticles
	default:
		return ViewBoth
	}
}

func (v ViewMode) String() string {
	switch v {
	case ViewSurface:
		return "surface"
	case ViewParticles:
		return "particles"
	default:
		return "surface+particles"
	}
}

func (v ViewMode) showSurface() bool   { return v != ViewParticles }
func (v ViewMode) showParticles() bool { return v != ViewSurface }
