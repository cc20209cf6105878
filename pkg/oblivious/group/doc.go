// Package group provides Scalar and Point value types over the Ristretto255
// prime-order group.
//
// Both types are immutable 32-byte values built on the sodium primitives.
// Every Scalar is canonical and non-zero; arithmetic that yields zero reports
// ErrInvalidScalar. Points come in two flavours: NewPoint trusts its input
// while ParsePoint validates it, and the group operations report
// ErrInvalidPoint for bytes that do not decode.
//
// Scalar multiplication always places the scalar on the left:
//
//	s := group.RandomScalar()
//	p := group.HashToPoint("alice")
//	q, err := s.MulPoint(p)
//	r, err := group.Mul(s, p) // same as above
//	_, err = group.Mul(p, s)  // ErrPointCannotBeLeftOperand
//
// The library must be opened through oblivious.Open before any constructor
// or operation is used.
package group
