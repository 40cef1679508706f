package rules

// LifeCounter is a life count bounded to [0, max].
type LifeCounter struct {
	value int
	max   int
}

// NewLifeCounter creates a counter starting at start, clamped to [0, max].
func NewLifeCounter(start, max int) LifeCounter {
	l := LifeCounter{max: max}
	l.Reset(start)
	return l
}

// Value returns the current number of lives.
func (l LifeCounter) Value() int {
	return l.value
}

// Max returns the upper bound.
func (l LifeCounter) Max() int {
	return l.max
}

// Update adds or removes one life without leaving [0, max].
// It reports whether the value changed.
func (l *LifeCounter) Update(add bool) bool {
	switch {
	case add && l.value < l.max:
		l.value++
	case !add && l.value > 0:
		l.value--
	default:
		return false
	}
	return true
}

// Reset sets the counter to start, clamped to [0, max].
func (l *LifeCounter) Reset(start int) {
	l.value = max(0, min(start, l.max))
}
