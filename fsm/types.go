package fsm

import "errors"

// AlphabetSize is the number of symbols in the quaternary alphabet.
// The symbol order 0 < 1 < 2 < 3 is fixed; permuting it would change every
// bijection built on top of the machine.
const AlphabetSize = 4

// MinRunLimit and MaxRunLimit bound the accepted run limit k. The machine
// construction generalizes to any k ≥ 1; the upper bound matches the
// reference tables this library is interoperable with.
const (
	MinRunLimit = 1
	MaxRunLimit = 5
)

// Forbidden is the sentinel returned by Table.Next for a transition that
// would extend a homopolymer run past the limit.
const Forbidden = -1

// ErrRunLimit indicates a run limit outside {MinRunLimit..MaxRunLimit}.
var ErrRunLimit = errors.New("fsm: run limit must be in 1..5")
