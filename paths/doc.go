// Package paths fills the big-integer path-count table of a run-length-
// constrained machine and answers capacity queries.
//
// For a machine with states S and a codeword length L, the table holds
// P[t][s] = the exact number of admissible length-t continuations from
// state s, for t = 0..L. Row 0 is all ones (the empty suffix is always
// admissible); each later row is the sum of the previous row over the
// allowed transitions. P[L][0] is the total number of admissible length-L
// strings, and the capacity
//
//	MaxDataBits = BitLen(P[L][0]) − 1
//
// is the largest M with 2^M ≤ P[L][0], i.e. the widest bit string a
// bijective encoder can accept.
//
// Counts grow like 4^L and overflow fixed-width integers for modest L, so
// every entry is a math/big integer. Memory is (L+1)·(4k+1) entries of
// O(L) bits each; filling costs O(L·k) big additions of O(L)-bit operands.
//
// Tables are immutable after New and safe for concurrent readers; distinct
// codecs may share one table as long as they agree on (k, L).
package paths
