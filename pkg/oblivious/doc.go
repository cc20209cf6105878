// Package oblivious exposes Ristretto255 points and scalars for oblivious
// protocols (oblivious PRFs, blinded set operations) together with the
// primitive operations they are built on.
//
// The backend is initialized once per process by Open. Initialization runs
// asynchronously; Open waits for it, and Ready exposes the same barrier for
// callers that only need to observe it. Using any point, scalar or sodium
// operation before initialization completes panics with ErrNotInitialized.
//
//	lib, err := oblivious.Open(ctx, oblivious.Config{})
//	if err != nil {
//		return err
//	}
//	defer lib.Close()
//
//	k := oblivious.RandomScalar()
//	blinded, err := k.MulPoint(oblivious.HashToPoint("alice@example.com"))
//
// The value types live in the group subpackage and are aliased here; the
// byte-level primitives live in the sodium subpackage.
package oblivious
