// Package sodium is the primitive-operation namespace: stateless functions
// over canonical byte encodings that forward to the ristretto255 backend.
//
// Names follow the short operation mnemonics used throughout the module:
//
//	Rnd  random scalar            Scl  validate (or draw) a scalar
//	Inv  scalar inverse           Smu  scalar product
//	Sad  scalar sum               Ssb  scalar difference
//	Pnt  64 bytes to a point      Bas  generator times scalar
//	Mul  scalar times point       Add  point sum
//	Sub  point difference         Hash SHA-512
//
// Scl signals a rejected candidate with a false second result rather than an
// error. Functions that decode their inputs return an error wrapping
// ErrWrongLength, ErrInvalidScalar or ErrInvalidPoint.
//
// The backend must be opened (see package oblivious) before any function in
// this package is called; until then they panic.
package sodium
