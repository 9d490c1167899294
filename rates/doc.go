// Package rates reports the capacity and coding rate of every supported
// run limit at a fixed codeword length — the numbers that decide which
// homopolymer constraint a DNA-storage pipeline can afford.
//
// For run limits 1..5, Compute returns the widest data width the codec
// accepts at the given length and the resulting rate in bits per base;
// Format renders the rows as the classic fixed-width table (here for
// length 100):
//
//	k     max_input_bits    rate(bits/base)
//	------------------------------------------
//	1     158               1.580000
//	...
//
// Rates approach 2 bits per base as the constraint relaxes (4 symbols
// carry at most 2 bits each) and sag toward log2(3) ≈ 1.585 at run
// limit 1.
package rates
