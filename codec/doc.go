// Package codec is the facade of the bounded-homopolymer codec: it owns
// the machine and its path-count table, validates every input shape, and
// routes between the general ranking path and the run-limit-1 shortcut.
//
// A Codec is constructed once for a triple (k, L, M) — run limit, codeword
// length, data width in bits — and is immutable afterwards, so any number
// of goroutines may call Encode and Decode on it concurrently. Encode maps
// an M-bit string onto a length-L word over '0'..'3' with no homopolymer
// run longer than k; Decode inverts the map exactly.
//
//	c, err := codec.New(2, 10, 18)
//	word, err := c.Encode("101100111000101101")
//	bits, err := c.Decode(word) // the original 18 bits
//
// For run limit 1 the codec delegates to the diffcode closed form; for
// every other run limit it ranks against the path-count table. The two
// paths serve disjoint configurations, so interoperability is unaffected.
//
// All fixed-width renderings are left-padded: decoded bit strings always
// have exactly M bytes, codewords exactly L. The symbol order 0 < 1 < 2
// < 3 fixes the bijection and must match on both ends of a pipeline.
//
// Construction is silent by default. WithVerbose enables a one-line
// construction report through the "hpcodec/codec" logging module.
package codec
