package paths

import (
	"math/big"

	"github.com/dnastore/hpcodec/fsm"
)

// Table is the filled path-count table of one machine at one codeword
// length. Immutable after New; safe for unsynchronized concurrent reads.
type Table struct {
	machine *fsm.Table
	length  int
	// counts[t][s] = number of admissible length-t continuations from s.
	counts [][]*big.Int
}

// New fills the table for the given machine and codeword length.
//
// Errors: ErrLength when length < 1. A nil machine panics: that is a
// programming error, not an input condition.
//
// Complexity: O(length · states) big-integer additions of O(length)-bit
// operands; memory O(length² · states) bits.
func New(machine *fsm.Table, length int) (*Table, error) {
	if length < 1 {
		return nil, ErrLength
	}

	states := machine.States()
	counts := make([][]*big.Int, length+1)

	// Row 0: the empty continuation is admissible from every state.
	counts[0] = make([]*big.Int, states)
	var s int
	for s = 0; s < states; s++ {
		counts[0][s] = big.NewInt(1)
	}

	var t, sym, ns int
	for t = 1; t <= length; t++ {
		counts[t] = make([]*big.Int, states)
		for s = 0; s < states; s++ {
			sum := new(big.Int)
			for sym = 0; sym < fsm.AlphabetSize; sym++ {
				if ns = machine.Next(s, sym); ns != fsm.Forbidden {
					sum.Add(sum, counts[t-1][ns])
				}
			}
			counts[t][s] = sum
		}
	}

	return &Table{machine: machine, length: length, counts: counts}, nil
}

// Machine returns the transition table this count table was filled for.
func (t *Table) Machine() *fsm.Table { return t.machine }

// Len returns the codeword length L the table was filled for.
func (t *Table) Len() int { return t.length }

// Count returns P[remaining][state]: the number of admissible
// continuations of the given remaining length from the given state.
// The returned value is shared, read-only storage — callers must not
// modify it. Out-of-range indices return nil.
func (t *Table) Count(remaining, state int) *big.Int {
	if remaining < 0 || remaining > t.length || state < 0 || state >= len(t.counts[0]) {
		return nil
	}

	return t.counts[remaining][state]
}

// Total returns a copy of P[L][0], the number of admissible length-L
// strings. The copy is the caller's to mutate.
func (t *Table) Total() *big.Int {
	return new(big.Int).Set(t.counts[t.length][0])
}

// MaxDataBits returns BitLen(P[L][0]) − 1, the largest M such that every
// M-bit integer has an admissible codeword. When P[L][0] is not a power of
// two this discards less than one bit of capacity; the uniform "bit length
// minus one" contract keeps encode widths exact.
func (t *Table) MaxDataBits() int {
	return t.counts[t.length][0].BitLen() - 1
}

// MaxDataBits builds the machine for run limit k, fills its table at the
// given length, and returns the capacity in bits. Use it for capacity
// queries that never encode, where no data width M exists to validate.
//
// Errors: fsm.ErrRunLimit, ErrLength.
func MaxDataBits(k, length int) (int, error) {
	machine, err := fsm.Build(k)
	if err != nil {
		return 0, err
	}

	table, err := New(machine, length)
	if err != nil {
		return 0, err
	}

	return table.MaxDataBits(), nil
}
