package diffcode

import "errors"

var (
	// ErrLength indicates a non-positive codeword length.
	ErrLength = errors.New("diffcode: codeword length must be positive")
	// ErrBitLength indicates a data width below the two bits that select
	// the first symbol.
	ErrBitLength = errors.New("diffcode: data width must be at least two bits")
	// ErrBitAlphabet indicates an input byte outside '0'/'1'.
	ErrBitAlphabet = errors.New("diffcode: bits contain a byte outside '0'..'1'")
	// ErrCapacity indicates an input too large for the codeword length.
	ErrCapacity = errors.New("diffcode: input exceeds the codeword capacity")
	// ErrWordLength indicates an empty codeword.
	ErrWordLength = errors.New("diffcode: codeword must be non-empty")
	// ErrAlphabet indicates a codeword byte outside '0'..'3'.
	ErrAlphabet = errors.New("diffcode: codeword contains a byte outside '0'..'3'")
	// ErrForbiddenRun indicates two equal adjacent symbols.
	ErrForbiddenRun = errors.New("diffcode: adjacent symbols must differ")
	// ErrRange indicates a valid codeword whose value does not fit the
	// configured data width.
	ErrRange = errors.New("diffcode: codeword value exceeds the data width")
)
