// Package internalcheck holds repository policy tests.
//
// The tests load the module with golang.org/x/tools/go/packages and verify
// that native code stays confined: only internal/bindings may import "C",
// and only pkg/swe may import internal/bindings. Everything else has to go
// through the lifecycle checks in pkg/swe.
//
// It is not intended for external use.
package internalcheck
