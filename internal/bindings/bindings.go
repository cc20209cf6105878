package bindings

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"filippo.io/edwards25519"
	"github.com/gtank/ristretto255"

	"github.com/nthparty/oblivious-go/pkg/oblivious/logging"
)

const (
	ristrettoModule  = "github.com/gtank/ristretto255"
	edwards25519Path = "filippo.io/edwards25519"
)

// Known answers checked before the backend is marked ready.
const (
	kaGenerator = "e2f2ae0a6abc4e71a884a961c500515f58e30b6aa582dd8db6a65945e08d2d76"
	kaSHA512abc = "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
		"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"
)

var (
	initOnce sync.Once
	ready    = make(chan struct{})
	initErr  error
	live     atomic.Bool

	mu   sync.Mutex
	next Handle = 1
	reg         = map[Handle]struct{}{}
)

// Open starts the process-wide backend initialization on first use and waits
// until it finishes or ctx is done. Initialization runs exactly once; the
// Config of the first caller is the one applied. Every successful call
// registers a new handle that must be released with Close.
func Open(ctx context.Context, cfg Config) (Handle, error) {
	initOnce.Do(func() { go initialize(cfg) })

	select {
	case <-ready:
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	if initErr != nil {
		return 0, initErr
	}

	mu.Lock()
	h := next
	next++
	reg[h] = struct{}{}
	mu.Unlock()
	return h, nil
}

// Close releases a handle returned by Open. The backend stays initialized for
// the lifetime of the process.
func Close(h Handle) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := reg[h]; !ok {
		return ErrUnknownHandle
	}
	delete(reg, h)
	return nil
}

// OpenHandles reports how many handles are currently registered.
func OpenHandles() int {
	mu.Lock()
	defer mu.Unlock()
	return len(reg)
}

// Ready returns a channel that is closed once initialization has finished,
// successfully or not. Use Err to tell the two apart.
func Ready() <-chan struct{} {
	return ready
}

// Err returns the initialization failure, or nil when initialization
// succeeded or has not finished yet.
func Err() error {
	select {
	case <-ready:
		return initErr
	default:
		return nil
	}
}

// Initialized reports whether primitives may be called.
func Initialized() bool {
	return live.Load()
}

// Version reports the resolved versions of the backend modules, or an empty
// string when build information is unavailable.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var parts []string
	for _, dep := range info.Deps {
		switch dep.Path {
		case ristrettoModule, edwards25519Path:
			parts = append(parts, dep.Path+"@"+dep.Version)
		}
	}
	return strings.Join(parts, " ")
}

func mustBeReady() {
	if !live.Load() {
		panic(ErrNotInitialized)
	}
}

func initialize(cfg Config) {
	defer close(ready)

	ctx := context.Background()
	log := logging.OrDefault(cfg.Logger).With("component", "bindings")
	log.Debug(ctx, "initializing ristretto255 backend", "version", Version())

	if !cfg.SkipSelfTest {
		if err := selfTest(); err != nil {
			initErr = err
			log.Error(ctx, "backend self-test failed", "error", err)
			return
		}
	}

	live.Store(true)
	log.Info(ctx, "ristretto255 backend ready", "self_test", !cfg.SkipSelfTest)
}

func selfTest() error {
	g := ristretto255.NewGeneratorElement()
	if !equalHex(g.Bytes(), kaGenerator) {
		return fmt.Errorf("%w: generator encoding", ErrSelfTest)
	}

	var two [ScalarSize]byte
	two[0] = 2
	s, err := ristretto255.NewScalar().SetCanonicalBytes(two[:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTest, err)
	}
	doubled := ristretto255.NewIdentityElement().Add(g, g)
	if ristretto255.NewIdentityElement().ScalarBaseMult(s).Equal(doubled) != 1 {
		return fmt.Errorf("%w: base multiplication", ErrSelfTest)
	}

	es, err := edwards25519.NewScalar().SetCanonicalBytes(two[:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSelfTest, err)
	}
	one := edwards25519.NewScalar().Multiply(es, edwards25519.NewScalar().Invert(es))
	var oneLE [ScalarSize]byte
	oneLE[0] = 1
	if subtle.ConstantTimeCompare(one.Bytes(), oneLE[:]) != 1 {
		return fmt.Errorf("%w: scalar inversion", ErrSelfTest)
	}

	sum := sha512.Sum512([]byte("abc"))
	if !equalHex(sum[:], kaSHA512abc) {
		return fmt.Errorf("%w: sha-512", ErrSelfTest)
	}
	return nil
}

func equalHex(got []byte, want string) bool {
	w, err := hex.DecodeString(want)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, w) == 1
}
