package codec_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/dnastore/hpcodec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDet keeps every randomized sweep reproducible.
const seedDet = 0x5eed

// randBits draws a bit string of the given width from rng.
func randBits(rng *rand.Rand, width int) string {
	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width; i++ {
		b.WriteByte(byte('0' + rng.Intn(2)))
	}

	return b.String()
}

// maxRun returns the longest homopolymer run in word.
func maxRun(word string) int {
	longest, run := 0, 0
	for i := 0; i < len(word); i++ {
		if i > 0 && word[i] == word[i-1] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return longest
}

// TestNew_Validation covers every construction sentinel.
func TestNew_Validation(t *testing.T) {
	_, err := codec.New(0, 4, 1)
	assert.ErrorIs(t, err, codec.ErrRunLimit)
	_, err = codec.New(6, 4, 1)
	assert.ErrorIs(t, err, codec.ErrRunLimit)

	_, err = codec.New(2, 0, 1)
	assert.ErrorIs(t, err, codec.ErrLength)

	_, err = codec.New(2, 4, 0)
	assert.ErrorIs(t, err, codec.ErrBits)
	_, err = codec.New(2, 4, -3)
	assert.ErrorIs(t, err, codec.ErrBits)

	_, err = codec.New(1, 4, 1)
	assert.ErrorIs(t, err, codec.ErrMinBitsK1)

	// Capacity at k=2, L=4 is 7 bits (228 codewords).
	_, err = codec.New(2, 4, 8)
	assert.ErrorIs(t, err, codec.ErrCapacity)

	c, err := codec.New(2, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, c.RunLimit())
	assert.Equal(t, 4, c.CodeLen())
	assert.Equal(t, 7, c.DataBits())
	assert.Equal(t, 7, c.MaxDataBits())
}

// TestEncode_SmallestRanks pins the first codewords of the k=2, L=4
// enumeration: every word starting "000" exceeds the run limit, so the
// single-bit inputs "0" and "1" map to "0010" and "0011".
func TestEncode_SmallestRanks(t *testing.T) {
	c, err := codec.New(2, 4, 1)
	require.NoError(t, err)

	word, err := c.Encode("0")
	require.NoError(t, err)
	assert.Equal(t, "0010", word)

	word, err = c.Encode("1")
	require.NoError(t, err)
	assert.Equal(t, "0011", word)
}

// TestEncode_RunLimitOne routes through the differential shortcut: at
// L=3 the all-zero input keeps stepping by one, 0 → 1 → 2.
func TestEncode_RunLimitOne(t *testing.T) {
	c, err := codec.New(1, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, c.MaxDataBits())

	word, err := c.Encode("0000")
	require.NoError(t, err)
	assert.Equal(t, "012", word)

	bits, err := c.Decode("012")
	require.NoError(t, err)
	assert.Equal(t, "0000", bits)
}

// TestEncode_ShapeValidation rejects wrong widths and non-bit bytes.
func TestEncode_ShapeValidation(t *testing.T) {
	c, err := codec.New(2, 4, 6)
	require.NoError(t, err)

	_, err = c.Encode("10101")
	assert.ErrorIs(t, err, codec.ErrBitLength)
	_, err = c.Encode("1010101")
	assert.ErrorIs(t, err, codec.ErrBitLength)
	_, err = c.Encode("10121?")
	assert.ErrorIs(t, err, codec.ErrBitAlphabet)
}

// TestDecode_ShapeValidation rejects wrong lengths and bad bytes.
func TestDecode_ShapeValidation(t *testing.T) {
	c, err := codec.New(2, 4, 6)
	require.NoError(t, err)

	_, err = c.Decode("012")
	assert.ErrorIs(t, err, codec.ErrWordLength)
	_, err = c.Decode("01234")
	assert.ErrorIs(t, err, codec.ErrWordLength)
	_, err = c.Decode("01a2")
	assert.ErrorIs(t, err, codec.ErrAlphabet)
	_, err = c.Decode("0124")
	assert.ErrorIs(t, err, codec.ErrAlphabet)
}

// TestDecode_ForbiddenRun rejects codewords that break the constraint,
// on both the ranking path and the shortcut path.
func TestDecode_ForbiddenRun(t *testing.T) {
	c, err := codec.New(2, 4, 6)
	require.NoError(t, err)
	_, err = c.Decode("0001")
	assert.ErrorIs(t, err, codec.ErrForbiddenRun)

	c1, err := codec.New(1, 4, 5)
	require.NoError(t, err)
	_, err = c1.Decode("0112")
	assert.ErrorIs(t, err, codec.ErrForbiddenRun)
}

// TestDecode_RankRange rejects admissible codewords whose rank exceeds
// the data width. At k=2, L=4, M=1 only ranks 0 and 1 are reachable.
func TestDecode_RankRange(t *testing.T) {
	c, err := codec.New(2, 4, 1)
	require.NoError(t, err)

	_, err = c.Decode("3323")
	assert.ErrorIs(t, err, codec.ErrRankRange)

	// Same contract on the run-limit-1 path: at M=2 the step word must be
	// zero, and "032" carries the largest possible steps.
	c1, err := codec.New(1, 3, 2)
	require.NoError(t, err)
	_, err = c1.Decode("032")
	assert.ErrorIs(t, err, codec.ErrRankRange)
}

// TestRoundTrip_Randomized drives decode∘encode = identity across run
// limits, lengths, and data widths with reproducible random inputs.
func TestRoundTrip_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	cases := []struct{ k, length int }{
		{1, 8}, {2, 10}, {3, 5}, {3, 16}, {4, 12}, {5, 10},
	}

	for _, tc := range cases {
		capacity, err := codec.MaxDataBits(tc.k, tc.length)
		require.NoError(t, err)

		for _, width := range []int{2, capacity / 2, capacity} {
			if width < 2 {
				continue
			}
			c, err := codec.New(tc.k, tc.length, width)
			require.NoError(t, err, "k=%d L=%d M=%d", tc.k, tc.length, width)

			for trial := 0; trial < 64; trial++ {
				bits := randBits(rng, width)
				word, err := c.Encode(bits)
				require.NoError(t, err, "bits=%s", bits)
				require.Len(t, word, tc.length)
				assert.LessOrEqual(t, maxRun(word), tc.k, "word=%s", word)

				back, err := c.Decode(word)
				require.NoError(t, err, "word=%s", word)
				require.Equal(t, bits, back, "k=%d L=%d M=%d", tc.k, tc.length, width)
			}
		}
	}
}

// TestRoundTrip_LeadingZeros confirms the padding contract: decoded bit
// strings keep their full width even when the rank is tiny.
func TestRoundTrip_LeadingZeros(t *testing.T) {
	c, err := codec.New(3, 12, 20)
	require.NoError(t, err)

	bits := "00000000000000000001"
	word, err := c.Encode(bits)
	require.NoError(t, err)
	back, err := c.Decode(word)
	require.NoError(t, err)
	assert.Equal(t, bits, back)
}

// TestMaxDataBits_FreeQuery exercises the M-free capacity query and its
// error mapping.
func TestMaxDataBits_FreeQuery(t *testing.T) {
	capacity, err := codec.MaxDataBits(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, capacity)

	_, err = codec.MaxDataBits(9, 4)
	assert.ErrorIs(t, err, codec.ErrRunLimit)
	_, err = codec.MaxDataBits(2, -1)
	assert.ErrorIs(t, err, codec.ErrLength)
}

// TestRate checks the bits-per-base ratio against the capacity.
func TestRate(t *testing.T) {
	c, err := codec.New(2, 4, 7)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/4.0, c.Rate(), 1e-12)
}

// TestEncode_RunBoundAtScale sweeps a wider codec and verifies no output
// ever violates the run limit (the property behind the whole design).
func TestEncode_RunBoundAtScale(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	c, err := codec.New(5, 10, 19)
	require.NoError(t, err)

	for trial := 0; trial < 256; trial++ {
		bits := randBits(rng, c.DataBits())
		word, err := c.Encode(bits)
		require.NoError(t, err)
		assert.LessOrEqual(t, maxRun(word), 5, "bits=%s word=%s", bits, word)
	}
}

// TestCodec_ConcurrentUse hammers one codec from many goroutines; run
// with -race to check the immutable-after-construction claim.
func TestCodec_ConcurrentUse(t *testing.T) {
	c, err := codec.New(3, 20, 30)
	require.NoError(t, err)

	const workers = 8
	done := make(chan error, workers)
	for w := 0; w < workers; w++ {
		go func(seed int64) {
			rng := rand.New(rand.NewSource(seed))
			for trial := 0; trial < 200; trial++ {
				bits := randBits(rng, c.DataBits())
				word, err := c.Encode(bits)
				if err != nil {
					done <- err

					return
				}
				back, err := c.Decode(word)
				if err != nil {
					done <- err

					return
				}
				if back != bits {
					done <- fmt.Errorf("round-trip mismatch: %s != %s", back, bits)

					return
				}
			}
			done <- nil
		}(seedDet + int64(w))
	}

	for w := 0; w < workers; w++ {
		assert.NoError(t, <-done)
	}
}
