// Package diffcode is the closed-form bijection for run limit 1 — the
// no-repeat case, where every symbol must differ from its predecessor.
//
// A length-L word with no repeats is exactly one first symbol (4 choices)
// followed by L−1 successive "steps" of +1, +2 or +3 modulo 4 (3 choices
// each, since a step of 0 would repeat). That makes 4·3^(L−1) words, so an
// input splits losslessly into two leading bits that pick the first symbol
// and a base-3 word of length L−1 that picks the steps:
//
//	s[0] = 2·b0 + b1
//	s[i] = (s[i−1] + d[i] + 1) mod 4,  d[i] ∈ {0,1,2}
//
// Decoding recovers d[i] = (s[i] − s[i−1] mod 4) − 1 and re-expresses the
// base-3 word in binary. No path-count table is needed; the general ranker
// produces a different (equally valid) bijection for the same word set, so
// the two paths must never be mixed for one stream.
package diffcode
