package pursuit

// Position is a point in world pixel coordinates.
type Position struct {
	X, Y float64
}

// MotionHistory is a fixed-capacity ring buffer of recent target positions.
// When full, a new sample evicts the oldest one.
type MotionHistory struct {
	buf   []Position
	head  int // next write slot
	count int
}

// NewMotionHistory returns an empty history holding at most capacity samples.
func NewMotionHistory(capacity int) *MotionHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &MotionHistory{buf: make([]Position, capacity)}
}

// Record appends a position sample, evicting the oldest when full.
func (h *MotionHistory) Record(p Position) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// Len returns the number of stored samples.
func (h *MotionHistory) Len() int { return h.count }

// At returns the i-th stored sample, oldest first.
func (h *MotionHistory) At(i int) Position {
	start := (h.head - h.count + len(h.buf)) % len(h.buf)
	return h.buf[(start+i)%len(h.buf)]
}

// Last returns the most recent sample, or false when empty.
func (h *MotionHistory) Last() (Position, bool) {
	if h.count == 0 {
		return Position{}, false
	}
	return h.At(h.count - 1), true
}

// Reset discards all samples.
func (h *MotionHistory) Reset() {
	h.head = 0
	h.count = 0
}
