// Package scratchpad implements a scratch allocator for the short-lived
// strings a compiler front end produces while scanning source text:
// identifiers, literals and the fragments of concatenated strings.
//
// # Overview
//
// Such strings mostly die in LIFO order. A Pad exploits that with three tiers:
//
//   - A fixed-capacity arena. Strings are bump-allocated into slots, each
//     followed by a one-byte length, so the most recent slot (the "last"
//     slot) can be freed or grown in place in O(1).
//   - Tombstones. Freeing any other arena slot only marks it dead; its space
//     comes back when the pad is Reset.
//   - Overflow blocks. Strings longer than MaxSlotSize, or that do not fit in
//     what is left of the arena, are allocated from an Allocator and kept in
//     a doubly linked list so they can be freed individually.
//
// # Basic Usage
//
//	pad := scratchpad.New(0) // Use default capacity
//	defer pad.Release()
//
//	id := pad.Copy("identifier")
//	lit, n, err := pad.CopyQuotedEscaped(src[1:]) // just past the opening quote
//
//	// "a" "b": join the two literals, merged in place when adjacent
//	s := pad.Join(pad.Copy("a"), pad.Copy("b"))
//	fmt.Println(pad.String(s))
//
//	pad.Free(s)
//	pad.Reset() // once per compilation unit
//
// # Handles
//
// Every allocation is returned as a Str, which records whether it lives in
// the arena or in an overflow block. Free, Grow and Join consume their
// arguments: afterwards only the returned handle may be used. Passing a
// consumed, stale or zero handle is a caller error and panics with an
// assertion failure (see errors.HasAssertionFailure in
// github.com/cockroachdb/errors).
//
// # Errors
//
// Running out of arena space is not an error; the string goes to overflow.
// A failing Allocator is fatal and panics with the wrapped allocator error.
// An unknown escape in a literal is reported to the Reporter and copied
// literally.
//
// # Thread Safety
//
// A Pad is not safe for concurrent use. Use one pad per compilation pass.
package scratchpad
