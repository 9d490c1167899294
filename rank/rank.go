package rank

import (
	"fmt"
	"math/big"

	"github.com/dnastore/hpcodec/fsm"
	"github.com/dnastore/hpcodec/paths"
)

// Coder ranks and unranks run-bounded quaternary strings of one fixed
// length. Immutable after New; safe for unsynchronized concurrent use.
type Coder struct {
	machine *fsm.Table
	table   *paths.Table
}

// New binds a coder to a filled path-count table. The machine is taken
// from the table, so a coder can never pair mismatched tables.
func New(table *paths.Table) (*Coder, error) {
	if table == nil {
		return nil, ErrNilTable
	}

	return &Coder{machine: table.Machine(), table: table}, nil
}

// Len returns the codeword length L the coder operates at.
func (c *Coder) Len() int { return c.table.Len() }

// Total returns a copy of the number of admissible codewords, P[L][0].
func (c *Coder) Total() *big.Int { return c.table.Total() }

// Unrank returns the admissible length-L string at position n of the
// lexicographic order. The argument is not mutated.
//
// Contracts:
//   - 0 ≤ n < Total().
//
// Errors: ErrRankRange when n is negative or ≥ Total().
//
// Complexity: O(L·4) big-integer comparisons and subtractions against
// O(L)-bit counts.
func (c *Coder) Unrank(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 || n.Cmp(c.table.Count(c.table.Len(), 0)) >= 0 {
		return "", fmt.Errorf("%w: %v not in [0, %s)", ErrRankRange, n, c.table.Count(c.table.Len(), 0))
	}

	var (
		length = c.table.Len()
		rem    = new(big.Int).Set(n)
		word   = make([]byte, length)
		state  = 0
	)

	var pos, sym, next int
	for pos = 0; pos < length; pos++ {
		emitted := false
		for sym = 0; sym < fsm.AlphabetSize; sym++ {
			next = c.machine.Next(state, sym)
			if next == fsm.Forbidden {
				continue
			}
			below := c.table.Count(length-pos-1, next)
			if rem.Cmp(below) < 0 {
				word[pos] = byte('0' + sym)
				state = next
				emitted = true

				break
			}
			rem.Sub(rem, below)
		}
		if !emitted {
			// Unreachable while the table invariant holds: the counts at
			// this layer sum to more than rem.
			return "", fmt.Errorf("%w: exhausted symbols at position %d", ErrRankRange, pos)
		}
	}

	return string(word), nil
}

// Rank returns the position of word in the lexicographic order of all
// admissible length-L strings — the exact inverse of Unrank.
//
// Errors: ErrWordLength, ErrAlphabet, ErrForbiddenRun; the message names
// the offending position. The whole word is checked against the alphabet
// before the walk, so ErrAlphabet takes precedence over ErrForbiddenRun.
//
// Complexity: O(L·4) big-integer additions.
func (c *Coder) Rank(word string) (*big.Int, error) {
	length := c.table.Len()
	if len(word) != length {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWordLength, len(word), length)
	}

	var (
		n     = new(big.Int)
		state = 0
	)

	var pos, sym, next int
	for pos = 0; pos < length; pos++ {
		if word[pos] < '0' || word[pos] > '3' {
			return nil, fmt.Errorf("%w: byte %q at position %d", ErrAlphabet, word[pos], pos)
		}
	}

	for pos = 0; pos < length; pos++ {
		emitted := int(word[pos] - '0')

		for sym = 0; sym < emitted; sym++ {
			if next = c.machine.Next(state, sym); next != fsm.Forbidden {
				n.Add(n, c.table.Count(length-pos-1, next))
			}
		}

		if state = c.machine.Next(state, emitted); state == fsm.Forbidden {
			return nil, fmt.Errorf("%w: run through position %d", ErrForbiddenRun, pos)
		}
	}

	return n, nil
}
