package ui

import (
	"fmt"
	"strings"

	"github.com/olivier-w/mercury/internal/ripple"
)

// renderSlots draws one glyph per ripple slot, brightest for the newest.
func renderSlots(u ripple.Uniforms) string {
	var sb strings.Builder
	sb.Grow(ripple.MaxSlots * 3)
	for i := range ripple.MaxSlots {
		if int32(i) < u.Count {
			sb.WriteString("●")
		} else {
			sb.WriteString("○")
		}
	}
	return sb.String()
}

func renderFPS(fps float64) string {
	return fmt.Sprintf("%3.0f fps", fps)
}
