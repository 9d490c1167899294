package fsm

// Table is the transition table of the run-length-constrained machine.
// Immutable after Build; safe for unsynchronized concurrent reads.
type Table struct {
	runLimit int
	// next[s][σ] is the state after emitting σ in state s, or Forbidden.
	next [][AlphabetSize]int
}

// Build constructs the transition table for the given run limit.
//
// States are numbered 0..4k: state 0 is the start state, and the chain
// state "symbol σ emitted j times in a row" (j = 1..k) is 1 + σ·k + (j−1).
// Emitting σ from state 0 or from another symbol's chain enters σ's chain
// at position 1; emitting σ within its own chain advances the position;
// emitting σ at position k is Forbidden.
//
// Errors: ErrRunLimit when k is outside {MinRunLimit..MaxRunLimit}.
//
// Complexity: O(k) states × 4 symbols, time and memory.
func Build(k int) (*Table, error) {
	if k < MinRunLimit || k > MaxRunLimit {
		return nil, ErrRunLimit
	}

	next := make([][AlphabetSize]int, AlphabetSize*k+1)

	var s, j int
	var sym, other int
	for sym = 0; sym < AlphabetSize; sym++ {
		// From the start state every symbol opens its own chain.
		next[0][sym] = chainState(sym, 1, k)

		for j = 1; j <= k; j++ {
			s = chainState(sym, j, k)
			for other = 0; other < AlphabetSize; other++ {
				switch {
				case other != sym:
					next[s][other] = chainState(other, 1, k)
				case j < k:
					next[s][other] = chainState(sym, j+1, k)
				default:
					next[s][other] = Forbidden
				}
			}
		}
	}

	return &Table{runLimit: k, next: next}, nil
}

// chainState numbers the j-th state (1-based) of symbol sym's run chain.
func chainState(sym, j, k int) int {
	return 1 + sym*k + (j - 1)
}

// RunLimit returns the run limit k the table was built for.
func (t *Table) RunLimit() int { return t.runLimit }

// States returns the number of states, 4k+1.
func (t *Table) States() int { return len(t.next) }

// Next returns the state reached by emitting symbol sym (0..3) in state s,
// or Forbidden when the transition would exceed the run limit.
// Out-of-range arguments also yield Forbidden, so callers may probe freely.
func (t *Table) Next(s, sym int) int {
	if s < 0 || s >= len(t.next) || sym < 0 || sym >= AlphabetSize {
		return Forbidden
	}

	return t.next[s][sym]
}

// Admissible reports whether word, a string over '0'..'3', can be produced
// by a walk from the start state — that is, whether it contains no run of
// identical symbols longer than the run limit. Any byte outside '0'..'3'
// makes the word inadmissible.
func (t *Table) Admissible(word string) bool {
	state := 0
	var i int
	for i = 0; i < len(word); i++ {
		sym := int(word[i] - '0')
		if sym < 0 || sym >= AlphabetSize {
			return false
		}
		if state = t.next[state][sym]; state == Forbidden {
			return false
		}
	}

	return true
}
