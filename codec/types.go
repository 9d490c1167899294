package codec

import (
	"errors"

	"github.com/dnastore/hpcodec/fsm"
)

// MinRunLimit and MaxRunLimit bound the accepted run limit, mirroring the
// machine builder.
const (
	MinRunLimit = fsm.MinRunLimit
	MaxRunLimit = fsm.MaxRunLimit
)

// Configuration errors, reported by New.
var (
	// ErrRunLimit indicates a run limit outside {1..5}.
	ErrRunLimit = errors.New("codec: run limit must be in 1..5")
	// ErrLength indicates a non-positive codeword length.
	ErrLength = errors.New("codec: codeword length must be positive")
	// ErrBits indicates a non-positive data width.
	ErrBits = errors.New("codec: data width must be positive")
	// ErrMinBitsK1 indicates run limit 1 with fewer than the two bits that
	// select the first symbol.
	ErrMinBitsK1 = errors.New("codec: run limit 1 requires a data width of at least two bits")
	// ErrCapacity indicates a data width beyond the codeword capacity.
	ErrCapacity = errors.New("codec: data width exceeds the codeword capacity")
)

// Input-shape errors, reported by Encode and Decode.
var (
	// ErrBitLength indicates an input whose length differs from the data width.
	ErrBitLength = errors.New("codec: bit string length does not match the data width")
	// ErrBitAlphabet indicates an input byte outside '0'/'1'.
	ErrBitAlphabet = errors.New("codec: bit string contains a byte outside '0'..'1'")
	// ErrWordLength indicates a codeword whose length differs from the codeword length.
	ErrWordLength = errors.New("codec: codeword length does not match the configured length")
	// ErrAlphabet indicates a codeword byte outside '0'..'3'.
	ErrAlphabet = errors.New("codec: codeword contains a byte outside '0'..'3'")
)

// Invalid-codeword errors, reported by Decode.
var (
	// ErrForbiddenRun indicates a codeword whose homopolymer run exceeds
	// the run limit.
	ErrForbiddenRun = errors.New("codec: codeword exceeds the homopolymer run limit")
	// ErrRankRange indicates an admissible codeword that no input of the
	// configured data width maps to.
	ErrRankRange = errors.New("codec: codeword rank exceeds the data width")
)
