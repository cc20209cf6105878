package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

// policyPatterns lists every non-test package the policies apply to.
var policyPatterns = []string{
	"github.com/nthparty/oblivious-go/internal/...",
	"github.com/nthparty/oblivious-go/pkg/oblivious/...",
}

func loadPackages(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()

	pkgs, err := packages.Load(&packages.Config{Mode: mode}, policyPatterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		t.Fatalf("load packages: %d errors", n)
	}
	if len(pkgs) == 0 {
		t.Fatal("load packages: no packages matched")
	}
	return pkgs
}
