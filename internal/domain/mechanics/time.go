package mechanics

// DefaultSlowScale is the time multiplier inside a time-slow zone
const DefaultSlowScale = 0.5

// TimeManager holds the multiplier applied to each simulation step.
// Entity updates keep running on wall-clock time.
type TimeManager struct {
	slowScale float64
	scale     float64
}

// NewTimeManager creates a manager at normal speed
func NewTimeManager(slowScale float64) *TimeManager {
	return &TimeManager{slowScale: slowScale, scale: 1.0}
}

// SetSlow switches between the slow multiplier and 1.0
func (t *TimeManager) SetSlow(slow bool) {
	if slow {
		t.scale = t.slowScale
		return
	}
	t.scale = 1.0
}

// Slow is shorthand for SetSlow(true)
func (t *TimeManager) Slow() {
	t.SetSlow(true)
}

// Reset restores normal speed
func (t *TimeManager) Reset() {
	t.SetSlow(false)
}

// Get returns the current multiplier
func (t *TimeManager) Get() float64 {
	return t.scale
}

// IsSlow reports whether the slow multiplier is active
func (t *TimeManager) IsSlow() bool {
	return t.scale != 1.0
}
