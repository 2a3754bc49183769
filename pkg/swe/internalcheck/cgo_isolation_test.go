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
	modulePath   = "github.com/libswe/swe-go"
	bindingsPath = modulePath + "/internal/bindings"
	swePath      = modulePath + "/pkg/swe"
)

func loadModule(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode:       mode,
		Tests:      true,
		BuildFlags: []string{"-tags=swe"},
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatal("no packages loaded")
	}
	return pkgs
}

func importsC(fset *token.FileSet, filename string) (bool, error) {
	f, err := parser.ParseFile(fset, filename, nil, parser.ImportsOnly)
	if err != nil {
		return false, err
	}
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		if path == "C" {
			return true, nil
		}
	}
	return false, nil
}

func TestOnlyBindingsImportC(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedFiles)

	fset := token.NewFileSet()
	var findings []string
	bindingsUsesC := false
	seen := map[string]bool{}

	for _, pkg := range pkgs {
		files := append(append([]string{}, pkg.GoFiles...), pkg.IgnoredFiles...)
		for _, file := range files {
			if seen[file] || !strings.HasSuffix(file, ".go") {
				continue
			}
			seen[file] = true

			ok, err := importsC(fset, file)
			if err != nil {
				t.Fatalf("parse %s: %v", file, err)
			}
			if !ok {
				continue
			}
			if pkg.PkgPath == bindingsPath {
				bindingsUsesC = true
				continue
			}
			findings = append(findings, fmt.Sprintf("%s: imports \"C\" outside %s", file, bindingsPath))
		}
	}

	if len(findings) > 0 {
		t.Fatalf("cgo isolation policy violation:\n%s", strings.Join(findings, "\n"))
	}
	if !bindingsUsesC {
		t.Fatalf("expected %s to hold the cgo bindings", bindingsPath)
	}
}

func TestOnlySweImportsBindings(t *testing.T) {
	pkgs := loadModule(t, packages.NeedName|packages.NeedImports)

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == swePath || pkg.PkgPath == bindingsPath {
			continue
		}
		if _, ok := pkg.Imports[bindingsPath]; ok {
			findings = append(findings, fmt.Sprintf("%s imports %s directly", pkg.PkgPath, bindingsPath))
		}
	}

	if len(findings) > 0 {
		t.Fatalf("lifecycle bypass:\n%s", strings.Join(findings, "\n"))
	}
}
