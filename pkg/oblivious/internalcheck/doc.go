// Package internalcheck holds static policy tests for the oblivious module.
//
// The tests load the library packages with golang.org/x/tools/go/packages
// and walk their syntax trees. They enforce that byte encodings are compared
// through crypto/subtle, that format strings never hex-dump values, and that
// randomness comes from crypto/rand.
//
// # Internal Use Only
//
// The package has no exported API and should not be imported.
package internalcheck
