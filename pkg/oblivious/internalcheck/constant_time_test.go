package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

func TestNoDirectByteComparison(t *testing.T) {
	pkgs := loadPackages(t, packages.NeedSyntax|packages.NeedTypes|packages.NeedTypesInfo|packages.NeedFiles|packages.NeedName)

	var findings []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				be, ok := n.(*ast.BinaryExpr)
				if !ok || (be.Op != token.EQL && be.Op != token.NEQ) {
					return true
				}

				if isBytes(pkg.TypesInfo.TypeOf(be.X)) && isBytes(pkg.TypesInfo.TypeOf(be.Y)) {
					pos := pkg.Fset.Position(be.Pos())
					findings = append(findings, fmt.Sprintf("%s: compare encodings with crypto/subtle, not %s", pos, be.Op))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("constant-time policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// isBytes reports whether typ is a byte slice, a byte array, or a named type
// or pointer over one. Structs that hold a byte array count too, since ==
// on Point or Scalar compares the encoding.
func isBytes(typ types.Type) bool {
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = ptr.Elem()
	}
	return holdsBytes(typ)
}

// holdsBytes does not follow pointers, so recursive types terminate.
func holdsBytes(typ types.Type) bool {
	if typ == nil {
		return false
	}

	switch tt := typ.Underlying().(type) {
	case *types.Slice:
		return isByte(tt.Elem())
	case *types.Array:
		return isByte(tt.Elem())
	case *types.Struct:
		for i := range tt.NumFields() {
			if holdsBytes(tt.Field(i).Type()) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func isByte(t types.Type) bool {
	basic, ok := t.(*types.Basic)
	return ok && basic.Kind() == types.Byte
}
