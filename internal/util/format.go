package util

import (
	"fmt"
	"time"
)

// FormatElapsed formats a duration as m:ss.t, truncating to tenths.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
