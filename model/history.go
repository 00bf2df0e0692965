package model

// DefaultHistorySize keeps enough generations to spot period 2 and 3 oscillators
const DefaultHistorySize = 5

// History stores the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history holding at most size hashes
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Record adds the generation to the history, dropping the oldest entry when full
func (h *History) Record(u *Universe) {
	h.hashes = append(h.hashes, u.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether u repeats one of the last three recorded generations,
// which covers still lifes and oscillators with period 2 or 3
func (h *History) IsStagnant(u *Universe) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := u.Hash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
