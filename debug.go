package radial

import (
	"fmt"
	"log"
)

// SetDebugMode enables or disables debug logging. When enabled, mounts, drag
// starts and ends, discarded jumps and ignored events are logged through the
// standard logger with a "[radial]" prefix.
func (s *Surface) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug logging is enabled.
func (s *Surface) DebugMode() bool {
	return s.debug
}

func (s *Surface) logf(format string, args ...any) {
	if !s.debug {
		return
	}
	log.Printf("[radial] "+format, args...)
}

// String summarizes the slider state for debug output.
func (s *Slider) String() string {
	return fmt.Sprintf("%s{value=%v index=%d/%d angle=%.4f state=%s}",
		s.Name, s.Value(), s.index, s.steps.Count()-1, s.angle, s.State())
}
