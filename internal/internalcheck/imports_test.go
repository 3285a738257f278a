package internalcheck

import (
	"fmt"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath = "github.com/fmiwrap/fmiwrap-go"
	nativePkg  = modulePath + "/internal/native"
)

// importers returns the packages of the module whose source files import
// path, whatever the build tags. Files excluded by the current build are
// checked too.
func importers(t *testing.T, path string) map[string][]string {
	t.Helper()
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	found := make(map[string][]string)
	fset := token.NewFileSet()
	for _, pkg := range pkgs {
		files := append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...)
		for _, name := range files {
			if !strings.HasSuffix(name, ".go") {
				continue
			}
			f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if p == path {
					found[pkg.PkgPath] = append(found[pkg.PkgPath], name)
				}
			}
		}
	}
	return found
}

func onlyNative(t *testing.T, path string) {
	t.Helper()
	var findings []string
	for pkg, files := range importers(t, path) {
		if pkg == nativePkg {
			continue
		}
		for _, f := range files {
			findings = append(findings, fmt.Sprintf("%s: imports %q outside %s", f, path, nativePkg))
		}
	}
	if len(findings) > 0 {
		t.Fatalf("import policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func TestCgoIsolatedInNative(t *testing.T) {
	onlyNative(t, "C")
}

func TestUnsafeIsolatedInNative(t *testing.T) {
	onlyNative(t, "unsafe")
}
