// Package rank realizes the bijection between integers and run-bounded
// quaternary strings of a fixed length.
//
// Given a machine (fsm) and its filled path-count table (paths), the set
// of admissible length-L strings is a layered DAG: layer t branches on the
// symbol emitted at position t, and the count table gives the exact number
// of leaves under every branch. Walking the layers while comparing and
// subtracting branch counts turns an integer into the string at that
// position of the lexicographic order (Unrank); summing the counts of the
// branches passed over turns a string back into its position (Rank). The
// two walks are exact inverses.
//
//	coder, _ := rank.New(table)
//	word, _ := coder.Unrank(big.NewInt(41))
//	n, _ := coder.Rank(word) // 41 again
//
// Symbol order 0 < 1 < 2 < 3 fixes the enumeration. A Coder is immutable
// and safe for concurrent use.
package rank
