package codec

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/op/go-logging"

	"github.com/dnastore/hpcodec/diffcode"
	"github.com/dnastore/hpcodec/fsm"
	"github.com/dnastore/hpcodec/paths"
	"github.com/dnastore/hpcodec/rank"
)

var log = logging.MustGetLogger("hpcodec/codec")

// Codec binds a validated (run limit, codeword length, data width) triple
// to its machine, path-count table, and coder. Immutable after New; safe
// for unsynchronized concurrent Encode and Decode.
type Codec struct {
	runLimit int
	codeLen  int
	dataBits int
	capacity int

	machine *fsm.Table
	table   *paths.Table
	coder   *rank.Coder
}

// New validates the configuration and builds the codec's tables.
//
// Contracts:
//   - k ∈ {MinRunLimit..MaxRunLimit}; length ≥ 1; bits ≥ 1;
//   - bits ≥ 2 when k == 1 (the shortcut consumes two leading bits);
//   - bits ≤ MaxDataBits(k, length).
//
// Errors: ErrRunLimit, ErrLength, ErrBits, ErrMinBitsK1, ErrCapacity —
// each naming the offending value.
//
// Complexity: dominated by the table fill, O(length·k) big-integer
// additions of O(length)-bit operands.
func New(k, length, bits int, opts ...Option) (*Codec, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if k < MinRunLimit || k > MaxRunLimit {
		return nil, fmt.Errorf("%w: got %d", ErrRunLimit, k)
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLength, length)
	}
	if bits < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBits, bits)
	}
	if k == 1 && bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrMinBitsK1, bits)
	}

	machine, err := fsm.Build(k)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d", ErrRunLimit, k)
	}
	table, err := paths.New(machine, length)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d", ErrLength, length)
	}

	capacity := table.MaxDataBits()
	if bits > capacity {
		return nil, fmt.Errorf("%w: %d bits, capacity %d at run limit %d, length %d",
			ErrCapacity, bits, capacity, k, length)
	}

	coder, err := rank.New(table)
	if err != nil {
		return nil, err
	}

	c := &Codec{
		runLimit: k,
		codeLen:  length,
		dataBits: bits,
		capacity: capacity,
		machine:  machine,
		table:    table,
		coder:    coder,
	}
	if o.verbose {
		log.Infof("constructed codec: run limit %d, length %d, data width %d, capacity %d, rate %.6f bits/base",
			k, length, bits, capacity, c.Rate())
	}

	return c, nil
}

// RunLimit returns the homopolymer run limit k.
func (c *Codec) RunLimit() int { return c.runLimit }

// CodeLen returns the codeword length L.
func (c *Codec) CodeLen() int { return c.codeLen }

// DataBits returns the configured data width M.
func (c *Codec) DataBits() int { return c.dataBits }

// MaxDataBits returns the capacity of (k, L): the largest admissible M.
func (c *Codec) MaxDataBits() int { return c.capacity }

// Rate returns the capacity per base, MaxDataBits / L, in bits.
func (c *Codec) Rate() float64 {
	return float64(c.capacity) / float64(c.codeLen)
}

// Total returns a copy of the number of admissible codewords.
func (c *Codec) Total() *big.Int { return c.table.Total() }

// Encode maps an M-bit string onto its length-L codeword.
//
// Errors: ErrBitLength, ErrBitAlphabet. The output always has length L
// and no run longer than the run limit; there is no partial output.
func (c *Codec) Encode(bits string) (string, error) {
	if len(bits) != c.dataBits {
		return "", fmt.Errorf("%w: got %d, want %d", ErrBitLength, len(bits), c.dataBits)
	}
	var i int
	for i = 0; i < len(bits); i++ {
		if bits[i] != '0' && bits[i] != '1' {
			return "", fmt.Errorf("%w: byte %q at position %d", ErrBitAlphabet, bits[i], i)
		}
	}

	if c.runLimit == 1 {
		word, err := diffcode.Encode(bits, c.codeLen)
		if err != nil {
			// Shape and capacity were validated above and at construction.
			return "", fmt.Errorf("codec: %v", err)
		}

		return word, nil
	}

	n := new(big.Int)
	n.SetString(bits, 2)

	return c.coder.Unrank(n)
}

// Decode maps a length-L codeword back to its M-bit string — the exact
// inverse of Encode.
//
// Errors: ErrWordLength, ErrAlphabet, ErrForbiddenRun, and ErrRankRange
// for admissible codewords no M-bit input maps to. No partial output.
func (c *Codec) Decode(code string) (string, error) {
	if len(code) != c.codeLen {
		return "", fmt.Errorf("%w: got %d, want %d", ErrWordLength, len(code), c.codeLen)
	}
	var i int
	for i = 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '3' {
			return "", fmt.Errorf("%w: byte %q at position %d", ErrAlphabet, code[i], i)
		}
	}

	if c.runLimit == 1 {
		bits, err := diffcode.Decode(code, c.dataBits)
		switch {
		case err == nil:
			return bits, nil
		case errors.Is(err, diffcode.ErrForbiddenRun):
			return "", fmt.Errorf("%w: %v", ErrForbiddenRun, err)
		case errors.Is(err, diffcode.ErrRange):
			return "", fmt.Errorf("%w: %v", ErrRankRange, err)
		default:
			return "", fmt.Errorf("codec: %v", err)
		}
	}

	n, err := c.coder.Rank(code)
	if err != nil {
		if errors.Is(err, rank.ErrForbiddenRun) {
			return "", fmt.Errorf("%w: %v", ErrForbiddenRun, err)
		}

		return "", fmt.Errorf("codec: %v", err)
	}
	if n.BitLen() > c.dataBits {
		return "", fmt.Errorf("%w: rank %s needs %d bits, have %d",
			ErrRankRange, n, n.BitLen(), c.dataBits)
	}

	return padLeft(n.Text(2), c.dataBits), nil
}

// MaxDataBits reports the capacity of (k, length) without constructing a
// full codec — the M-free capacity query.
//
// Errors: ErrRunLimit, ErrLength.
func MaxDataBits(k, length int) (int, error) {
	capacity, err := paths.MaxDataBits(k, length)
	switch {
	case err == nil:
		return capacity, nil
	case errors.Is(err, fsm.ErrRunLimit):
		return 0, fmt.Errorf("%w: got %d", ErrRunLimit, k)
	default:
		return 0, fmt.Errorf("%w: got %d", ErrLength, length)
	}
}

// padLeft zero-pads bits on the left to the data width.
func padLeft(bits string, width int) string {
	if len(bits) >= width {
		return bits
	}

	return strings.Repeat("0", width-len(bits)) + bits
}
