package scratchpad

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrOutOfMemory is returned by a HeapAllocator whose Limit would be exceeded.
	ErrOutOfMemory = errors.New("scratchpad: allocator out of memory")

	// ErrUnterminated is returned by CopyQuotedEscaped when the input ends
	// before the closing quote.
	ErrUnterminated = errors.New("scratchpad: unterminated string literal")
)

// violationf panics with an assertion failure. It is used for caller contract
// violations (stale or zero handles, double frees, shrinking grows) that would
// otherwise corrupt the pad silently.
func violationf(format string, args ...interface{}) {
	panic(errors.AssertionFailedf("scratchpad: "+format, args...))
}

// fatal panics with an allocator failure. The pad has no recovery path for a
// failed overflow allocation.
func fatal(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, "scratchpad: "+format, args...))
}
