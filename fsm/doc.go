// Package fsm builds the run-length-constrained finite-state machine over
// the quaternary alphabet {0,1,2,3}.
//
// The machine tracks the identity and length of the trailing homopolymer
// run. State 0 is the start state (no prior symbol); every symbol σ owns a
// chain of k states "σ emitted j times in a row" for j = 1..k. Emitting σ
// from the terminal chain state is forbidden, so a walk through the machine
// can never produce a run longer than k.
//
// For run limit k the machine has 4k+1 states, and admissibility of a
// string is a purely local (state, symbol) lookup:
//
//	t, _ := fsm.Build(2)
//	next := t.Next(0, 3)        // state after emitting '3' first
//	t.Next(next, 3)             // second '3' in a row: still allowed
//	ok := t.Admissible("0102")  // true
//
// Tables are immutable after Build and safe for concurrent readers.
package fsm
