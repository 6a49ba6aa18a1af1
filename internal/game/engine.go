// internal/game/engine.go
//
// Feasibility rules for a parsed game.
// A game is possible under a set of limits when no sample in any of its
// draw-sets shows more cubes of a color than the bag can hold.
//
// All checks are pure; short-circuiting on the first failure does not
// change the answer.
package game

// Allows reports whether s fits within the limit for its color.
func (l Limits) Allows(s Sample) bool {
	return s.Count <= l[s.Color]
}

// Possible reports whether every sample in the set fits the limits.
func (d DrawSet) Possible(l Limits) bool {
	for _, s := range d {
		if !l.Allows(s) {
			return false
		}
	}
	return true
}

// Possible reports whether every draw-set of the game fits the limits.
func (g Game) Possible(l Limits) bool {
	for _, d := range g.Sets {
		if !d.Possible(l) {
			return false
		}
	}
	return true
}

// Violation returns the first sample that exceeds its limit and true,
// or a zero Sample and false when the game is possible.
func (g Game) Violation(l Limits) (Sample, bool) {
	for _, d := range g.Sets {
		for _, s := range d {
			if !l.Allows(s) {
				return s, true
			}
		}
	}
	return Sample{}, false
}
