package internalcheck

import (
	"strconv"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestRandomnessFromCryptoRand(t *testing.T) {
	pkgs := loadPackages(t, packages.NeedSyntax|packages.NeedFiles|packages.NeedName)

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, imp := range file.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					continue
				}
				if path == "math/rand" || path == "math/rand/v2" {
					t.Errorf("%s: %s imports %s; use crypto/rand", pkg.Fset.Position(imp.Pos()), pkg.PkgPath, path)
				}
			}
		}
	}
}
