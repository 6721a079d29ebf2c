package radial

// Surface is the top-level input surface that sliders are mounted on. It owns
// the per-pointer input state, the surface-level listener registry that drag
// sessions attach to, the injected-input queue and pending screenshot labels.
//
// A Surface is not safe for concurrent use; drive it from the host's update
// loop.
type Surface struct {
	sliders []*Slider
	debug   bool

	// Input state
	handlers    handlerRegistry
	pointers    [MaxPointers]pointerState
	injectQueue []syntheticPointerEvent
	runner      *Runner

	// ScreenshotDir is where hosts write screenshots queued with Screenshot.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{ScreenshotDir: "screenshots"}
}

// Mount places sl on the surface with its top-left corner at (x, y). A slider
// can be mounted on one surface at a time; mounting again moves it.
func (s *Surface) Mount(sl *Slider, x, y float64) {
	if sl.surface != nil && sl.surface != s {
		sl.surface.Unmount(sl)
	}
	sl.origin = Vec2{X: x, Y: y}
	sl.unmounted = false
	if sl.surface == s {
		return
	}
	sl.surface = s
	s.sliders = append(s.sliders, sl)
	s.logf("mount %q at (%.0f, %.0f)", sl.Name, x, y)
}

// Unmount removes sl from the surface, ending any drag in progress so its
// listeners do not outlive it.
func (s *Surface) Unmount(sl *Slider) {
	for i, c := range s.sliders {
		if c == sl {
			s.sliders = append(s.sliders[:i], s.sliders[i+1:]...)
			break
		}
	}
	if sl.surface == s {
		sl.endDrag()
		sl.surface = nil
		sl.unmounted = true
		s.logf("unmount %q", sl.Name)
	}
}

// Sliders returns the mounted sliders in mount order (bottom to top). The
// returned slice MUST NOT be mutated.
func (s *Surface) Sliders() []*Slider {
	return s.sliders
}

// Slider returns the first mounted slider with the given name, or nil.
func (s *Surface) Slider(name string) *Slider {
	for _, sl := range s.sliders {
		if sl.Name == name {
			return sl
		}
	}
	return nil
}

// Update advances the surface by one tick: it steps the attached Runner,
// then consumes one injected pointer event if any is queued, otherwise polls
// src for real device input. src may be nil.
func (s *Surface) Update(src InputSource) {
	if s.runner != nil {
		s.runner.step(s)
	}
	if s.processInjectedInput() {
		return
	}
	if src != nil {
		src.Poll(s)
	}
}

// Close unmounts every slider and releases any drag still in progress.
func (s *Surface) Close() {
	for len(s.sliders) > 0 {
		s.Unmount(s.sliders[len(s.sliders)-1])
	}
}

// Screenshot queues a labeled screenshot. Hosts capture queued labels at the
// end of their next draw via TakeScreenshots.
func (s *Surface) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Surface) TakeScreenshots() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	return labels
}
