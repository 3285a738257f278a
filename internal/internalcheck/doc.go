// Package internalcheck holds repository policy tests.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and fail when library code breaks one of the rules below:
//
//   - only internal/native imports "C";
//   - only internal/native imports "unsafe";
//   - library packages never print to stdout or through the log package.
//
// It is not intended for external use.
package internalcheck
