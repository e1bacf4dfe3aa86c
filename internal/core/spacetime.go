package core

// SpaceTime stores the most recent H configurations of a width-W automaton
// in row-major order. Row 0 is the newest generation.
type SpaceTime struct {
	W, H int
	rows int
	data []uint8
}

// NewSpaceTime allocates a history of h rows of width w.
func NewSpaceTime(w, h int) *SpaceTime {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &SpaceTime{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice, newest row first.
func (s *SpaceTime) Cells() []uint8 { return s.data }

// Row returns the y-th most recent generation.
func (s *SpaceTime) Row(y int) []uint8 { return s.data[y*s.W : (y+1)*s.W] }

// Len reports how many generations have been recorded, capped at H.
func (s *SpaceTime) Len() int { return s.rows }

// Push scrolls the history down by one row and stores row on top. Rows
// shorter than W are zero-padded, longer rows are truncated.
func (s *SpaceTime) Push(row []uint8) {
	copy(s.data[s.W:], s.data[:s.W*(s.H-1)])
	top := s.data[:s.W]
	n := copy(top, row)
	for i := n; i < s.W; i++ {
		top[i] = 0
	}
	if s.rows < s.H {
		s.rows++
	}
}

// Clear drops all recorded generations.
func (s *SpaceTime) Clear() {
	for i := range s.data {
		s.data[i] = 0
	}
	s.rows = 0
}

// Wrap maps any integer offset onto [0, n).
func Wrap(i, n int) int {
	return (i%n + n) % n
}
