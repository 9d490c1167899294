package rank

import "errors"

var (
	// ErrNilTable indicates New was given a nil path-count table.
	ErrNilTable = errors.New("rank: path-count table must not be nil")
	// ErrRankRange indicates an integer outside [0, P[L][0]).
	ErrRankRange = errors.New("rank: integer outside the codeword range")
	// ErrWordLength indicates a word whose length differs from the table's L.
	ErrWordLength = errors.New("rank: word length does not match the configured codeword length")
	// ErrAlphabet indicates a byte outside '0'..'3'.
	ErrAlphabet = errors.New("rank: word contains a byte outside '0'..'3'")
	// ErrForbiddenRun indicates a word whose homopolymer run exceeds the limit.
	ErrForbiddenRun = errors.New("rank: word exceeds the homopolymer run limit")
)
