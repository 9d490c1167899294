package diffcode

import (
	"fmt"
	"math/big"
	"strings"
)

// Encode maps a bit string onto the no-repeat quaternary word of the given
// length. The first two bits select the first symbol; the remaining bits,
// read as a binary integer and re-expressed in base 3 left-padded to
// length−1 digits, select the successive steps.
//
// Contracts:
//   - length ≥ 1; len(bits) ≥ 2; bits over '0'/'1'.
//   - the value of bits[2:] must be < 3^(length−1).
//
// Errors: ErrLength, ErrBitLength, ErrBitAlphabet, ErrCapacity.
func Encode(bits string, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: got %d", ErrLength, length)
	}
	if len(bits) < 2 {
		return "", fmt.Errorf("%w: got %d bits", ErrBitLength, len(bits))
	}
	var i int
	for i = 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return "", fmt.Errorf("%w: byte %q at position %d", ErrBitAlphabet, bits[i], i)
		}
	}

	value := new(big.Int)
	if len(bits) > 2 {
		value.SetString(bits[2:], 2)
	}
	limit := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(length-1)), nil)
	if value.Cmp(limit) >= 0 {
		return "", fmt.Errorf("%w: step value %s not below 3^%d", ErrCapacity, value, length-1)
	}

	steps := padLeft(value.Text(3), length-1)
	word := make([]byte, length)
	prev := 2*int(bits[0]-'0') + int(bits[1]-'0')
	word[0] = byte('0' + prev)
	for i = 1; i < length; i++ {
		prev = (prev + int(steps[i-1]-'0') + 1) % 4
		word[i] = byte('0' + prev)
	}

	return string(word), nil
}

// Decode inverts Encode: the first symbol yields two bits, the symbol
// differences yield a base-3 word re-expressed in binary and left-padded
// to width−2 bits.
//
// Contracts:
//   - code non-empty over '0'..'3' with no two equal adjacent symbols;
//   - width ≥ 2; the step value must fit in width−2 bits.
//
// Errors: ErrWordLength, ErrBitLength, ErrAlphabet, ErrForbiddenRun,
// ErrRange.
func Decode(code string, width int) (string, error) {
	if len(code) < 1 {
		return "", ErrWordLength
	}
	if width < 2 {
		return "", fmt.Errorf("%w: got width %d", ErrBitLength, width)
	}

	var i int
	for i = 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '3' {
			return "", fmt.Errorf("%w: byte %q at position %d", ErrAlphabet, code[i], i)
		}
		if i > 0 && code[i] == code[i-1] {
			return "", fmt.Errorf("%w: positions %d and %d", ErrForbiddenRun, i-1, i)
		}
	}

	steps := make([]byte, len(code)-1)
	for i = 1; i < len(code); i++ {
		diff := (int(code[i]) - int(code[i-1]) + 4) % 4
		steps[i-1] = byte('0' + diff - 1)
	}

	value := new(big.Int)
	if len(steps) > 0 {
		value.SetString(string(steps), 3)
	}
	if value.BitLen() > width-2 {
		return "", fmt.Errorf("%w: step value %s needs %d bits, have %d",
			ErrRange, value, value.BitLen(), width-2)
	}

	first := int(code[0] - '0')
	var out strings.Builder
	out.Grow(width)
	out.WriteByte(byte('0' + first>>1))
	out.WriteByte(byte('0' + first&1))
	out.WriteString(padLeft(value.Text(2), width-2))

	return out.String(), nil
}

// padLeft zero-pads digits on the left to the given width. A zero value
// rendered at width 0 collapses to the empty string.
func padLeft(digits string, width int) string {
	if width == 0 {
		return ""
	}

	return strings.Repeat("0", width-len(digits)) + digits
}
