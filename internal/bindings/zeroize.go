package bindings

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This follows the pattern discussed in golang/go#33325. It cannot guarantee
// that no copy survives elsewhere (the garbage collector may have moved the
// buffer, and the backends keep their own temporaries), so it only narrows the
// window in which seeds and intermediate digests stay in memory.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
