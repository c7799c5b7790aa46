package solver

// Propagate runs the arc-consistency loop to a fixpoint, mutating the state
// in place. Each sweep visits every cell of every unit; unresolved cells
// lose any candidate already assigned to a peer in one of their three
// units, and a cell whose domain collapses to a single candidate is
// committed immediately, so removals cascade within the same sweep.
// Returns whether anything changed.
//
// Termination is guaranteed: domains only shrink, and each sweep either
// resolves or eliminates something or is the last.
func Propagate(s *State) bool {
	changed := false
	for {
		swept := false
		for _, u := range unitTable {
			for _, idx := range u {
				if s.unresolved[idx] && s.eliminate(idx) {
					swept = true
				}
			}
		}
		if s.stats != nil {
			s.stats.Passes++
		}
		if !swept {
			return changed
		}
		changed = true
	}
}

// eliminate removes from the cell's domain every digit currently assigned
// to a peer in any of its three units. The moment the domain is reduced to
// one candidate, that candidate is committed.
func (s *State) eliminate(idx int) bool {
	removed := false
	for _, u := range unitsOfTable[idx] {
		for _, peer := range u {
			if peer == idx {
				continue
			}
			d := s.Grid[peer].Digit()
			if d == 0 || !s.domains[idx].Has(d) {
				continue
			}
			s.domains[idx].Remove(d)
			removed = true
			if s.stats != nil {
				s.stats.Eliminations++
			}
			if single, ok := s.domains[idx].Single(); ok {
				s.assign(idx, single)
				return true
			}
		}
	}
	return removed
}
