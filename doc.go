// Package hpcodec is a bijective codec between binary data and fixed-length
// quaternary strings whose homopolymer runs never exceed a configured bound —
// the constraint that matters when bits are stored as DNA bases.
//
// 🚀 What is hpcodec?
//
//	A small, deterministic library that brings together:
//		• FSM construction: the run-length-constrained automaton over {0,1,2,3}
//		• Path counting: exact big-integer counts of admissible continuations
//		• Ranking: a length-preserving bijection between [0, N_L) and the
//		  admissible strings of length L, in lexicographic order
//		• Differential coding: a closed-form shortcut for run limit 1
//		• A facade that validates shapes and pads every fixed-width rendering
//
// ✨ Why choose hpcodec?
//
//   - Exact — every mapping is a true bijection; decode∘encode is identity
//   - Predictable — immutable after construction, safe for concurrent use
//   - Strict — sentinel errors for every misuse, no partial output
//
// Under the hood, everything is organized under six subpackages:
//
//	fsm/      — transition table for run limit k over the quaternary alphabet
//	paths/    — big-integer path-count table and the capacity oracle
//	rank/     — Rank and Unrank over an FSM and its path table
//	diffcode/ — base-3 differential bijection for run limit 1
//	codec/    — the facade: construction, Encode, Decode, capacity queries
//	rates/    — capacity and rate rows for run limits 1..5 at a given length
//
// Quick example:
//
//	c, err := codec.New(3, 20, 30)   // run limit 3, 20 bases, 30 data bits
//	word, err := c.Encode(bits)      // "0213…" with no run longer than 3
//	bits, err := c.Decode(word)      // the original 30-bit string
//
// The symbol order 0 < 1 < 2 < 3 fixes the bijection; map symbols to bases
// (A, C, G, T or any fixed permutation) outside this library.
package hpcodec
