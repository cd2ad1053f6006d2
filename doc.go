// Package bitarray provides a fixed-capacity bit array packed into uint64
// words.
//
// Architecture:
//   - Fixed capacity: sized once at construction, never grows
//   - Word-packed: one uint64 word holds 64 logical bits
//   - Padding discipline: bits beyond the capacity in the last word are
//     always kept at zero, so Count, Any and Equal can scan whole words
//
// # Quick Start
//
//	ba, _ := bitarray.New(7) // 0000000
//	ba.SetAll()              // 1111111
//	ba.FlipAll()             // 0000000
//	_ = ba.Set(0, true)      // 1000000
//	_ = ba.Set(5, true)      // 1000010
//	_ = ba.Flip(3)           // 1001010
//	bit, _ := ba.Get(3)      // true
//
// Every positional operation is bounds-checked and fails with
// ErrIndexOutOfRange outside [0, Len). BitArray is not safe for concurrent
// use; callers that share one across goroutines must synchronize externally.
package bitarray
