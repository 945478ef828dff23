//go:build !debug

package trace

import "testing"

// WithTesting is a no-op outside debug builds.
func WithTesting(t testing.TB) func() { return func() {} }
