package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/nthparty/oblivious-go/pkg/oblivious"
	"github.com/nthparty/oblivious-go/pkg/oblivious/logging"
)

func main() {
	var (
		timeout  = flag.Duration("timeout", 5*time.Second, "how long to wait for backend initialization")
		skipKAT  = flag.Bool("skip-self-test", false, "skip the backend known-answer self-test")
		debug    = flag.Bool("debug", false, "enable debug logging")
		identity = flag.String("input", "alice@example.com", "input to blind and unblind")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	log.Printf("oblivious-go version: %s", oblivious.WrapperVersion())
	log.Printf("backend: %s", oblivious.BackendVersion())

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	lib, err := oblivious.Open(ctx, oblivious.Config{Logger: logger, SkipSelfTest: *skipKAT})
	if err != nil {
		log.Fatalf("open library: %v", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	if err := roundTrip(*identity); err != nil {
		_ = lib.Close()
		log.Fatalf("round trip failed: %v", err)
	}
}

// roundTrip blinds the hash of input with a random scalar, unblinds it with
// the inverse and checks that the original point comes back.
func roundTrip(input string) error {
	p := oblivious.HashToPoint(input)
	k := oblivious.RandomScalar()

	blinded, err := k.MulPoint(p)
	if err != nil {
		return fmt.Errorf("blind: %w", err)
	}
	inv, err := k.Invert()
	if err != nil {
		return fmt.Errorf("invert: %w", err)
	}
	unblinded, err := inv.MulPoint(blinded)
	if err != nil {
		return fmt.Errorf("unblind: %w", err)
	}
	if !unblinded.Equal(p) {
		return fmt.Errorf("unblinded point does not match hash of %q", input)
	}

	fmt.Printf("hash-to-point: %s\n", p.ToBase64())
	fmt.Printf("blinded:       %s\n", blinded.ToBase64())
	fmt.Printf("key:           %s\n", k)
	fmt.Println("round trip ok")
	return nil
}
