package assert

import "fmt"

// Must panics when b is false. It guards states the containers in this
// module treat as unrecoverable; callers never see them as errors.
func Must(b bool) {
	if b {
		return
	}
	panic("assertion failed")
}

// Mustf is Must with a formatted description of the violated invariant.
func Mustf(b bool, format string, args ...interface{}) {
	if b {
		return
	}
	panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(format, args...)))
}
