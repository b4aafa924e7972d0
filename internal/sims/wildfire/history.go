package wildfire

// History is the per-tick population record. Each slice grows by exactly one
// value per tick and is never rewritten.
type History struct {
	Burning []int
	Forest  []int
	Rock    []int
}

// Len reports the number of ticks recorded.
func (h History) Len() int { return len(h.Burning) }

// At returns the tally recorded for the i-th tick (zero based).
func (h History) At(i int) Counts {
	return Counts{Burning: h.Burning[i], Forest: h.Forest[i], Rock: h.Rock[i]}
}

// Last returns the most recent tally and false when nothing was recorded.
func (h History) Last() (Counts, bool) {
	if h.Len() == 0 {
		return Counts{}, false
	}
	return h.At(h.Len() - 1), true
}

// Clone returns a deep copy.
func (h History) Clone() History {
	return History{
		Burning: append([]int(nil), h.Burning...),
		Forest:  append([]int(nil), h.Forest...),
		Rock:    append([]int(nil), h.Rock...),
	}
}

func (h *History) record(c Counts) {
	h.Burning = append(h.Burning, c.Burning)
	h.Forest = append(h.Forest, c.Forest)
	h.Rock = append(h.Rock, c.Rock)
}
