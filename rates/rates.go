package rates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dnastore/hpcodec/fsm"
	"github.com/dnastore/hpcodec/paths"
)

// ErrLength indicates a non-positive codeword length.
var ErrLength = errors.New("rates: codeword length must be positive")

// Row is one line of the capacity table.
type Row struct {
	// RunLimit is the homopolymer run limit k.
	RunLimit int
	// MaxDataBits is the widest data width the codec accepts at this
	// run limit and length.
	MaxDataBits int
	// Rate is MaxDataBits divided by the codeword length, in bits per base.
	Rate float64
}

// Compute returns a row per run limit 1..5 at the given codeword length.
//
// Errors: ErrLength when length < 1.
//
// Complexity: five table fills, O(length²·k) bits each.
func Compute(length int) ([]Row, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrLength, length)
	}

	rows := make([]Row, 0, fsm.MaxRunLimit)
	var k int
	for k = fsm.MinRunLimit; k <= fsm.MaxRunLimit; k++ {
		capacity, err := paths.MaxDataBits(k, length)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			RunLimit:    k,
			MaxDataBits: capacity,
			Rate:        float64(capacity) / float64(length),
		})
	}

	return rows, nil
}

// Format renders rows as the fixed-width capacity table: a header, a
// 42-dash rule, and one line per run limit with the rate to six decimal
// places.
func Format(rows []Row) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-6s%-18s%s\n", "k", "max_input_bits", "rate(bits/base)"))
	b.WriteString(strings.Repeat("-", 42))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-6d%-18d%.6f\n", row.RunLimit, row.MaxDataBits, row.Rate))
	}

	return b.String()
}
