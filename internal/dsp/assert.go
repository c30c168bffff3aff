package dsp

import "fmt"

// debugAssertions gates precondition checks on kernel inputs:
// out-of-range dimensions, angles, or filter indices are programming
// errors, not runtime conditions, and the hot path never branches on
// them in a release build. Flip to true (and rebuild) when chasing a
// caller bug; the compiler dead-code-eliminates every assert call when
// this is false, matching a C assert() being compiled out under NDEBUG.
const debugAssertions = false

// assertf panics with a formatted message when debugAssertions is on and
// cond is false. Never called on the hot path in a release build.
func assertf(cond bool, format string, args ...any) {
	if !debugAssertions {
		return
	}
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
