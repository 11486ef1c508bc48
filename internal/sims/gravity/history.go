package gravity

// HistoryCap is the number of past positions kept for trail rendering.
const HistoryCap = 30

// History is a fixed ring of the most recent positions, oldest first.
type History struct {
	buf   [HistoryCap]float64
	start int
	n     int
}

// Push appends a position, evicting the oldest once the ring is full.
func (h *History) Push(pos float64) {
	if h.n < HistoryCap {
		h.buf[(h.start+h.n)%HistoryCap] = pos
		h.n++
		return
	}
	h.buf[h.start] = pos
	h.start = (h.start + 1) % HistoryCap
}

// Len returns the number of stored positions.
func (h *History) Len() int { return h.n }

// At returns the i-th oldest position.
func (h *History) At(i int) float64 {
	return h.buf[(h.start+i)%HistoryCap]
}

// Positions returns the stored positions in chronological order.
func (h *History) Positions() []float64 {
	out := make([]float64, h.n)
	for i := range out {
		out[i] = h.At(i)
	}
	return out
}
