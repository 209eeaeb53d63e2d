// Package gosource discovers documented symbols in a Go package.
//
// Exported top-level functions (including constructors that go/doc groups
// under their result type) are functions. A type with typed constants is an
// enumeration whose members are those constants. A type whose value or
// pointer implements error is an exception. Every other exported type is a
// class. Package-level constants and variables that belong to no type are
// reported with kind Unknown.
package gosource

import (
	"bytes"
	"context"
	"fmt"
	"go/ast"
	"go/doc"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/symbol"
)

// Provider loads symbols from the Go package matched by a pattern.
type Provider struct {
	pattern string
	dir     string
}

// New returns a provider for pattern, which may be a directory, a single
// .go file, or an import path. Relative patterns resolve against dir; an
// empty dir means the current directory.
func New(pattern, dir string) *Provider {
	return &Provider{pattern: pattern, dir: dir}
}

// Symbols implements symbol.Provider.
func (p *Provider) Symbols(ctx context.Context) (_ []symbol.Symbol, err error) {
	defer derrors.Wrap(&err, "go package %s", p.pattern)

	pkg, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	dpkg, err := doc.NewFromFiles(pkg.Fset, pkg.Syntax, pkg.PkgPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.BadInput, err)
	}
	c := collector{fset: pkg.Fset, scope: pkg.Types.Scope()}
	return symbol.Normalize(c.collect(dpkg)), nil
}

func (p *Provider) load(ctx context.Context) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     p.dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, localPattern(p.pattern, p.dir))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", derrors.BadInput, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: no Go packages matched %q", derrors.BadInput, p.pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", derrors.BadInput, pkg.Errors[0])
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("%w: no type information for %q", derrors.BadInput, p.pattern)
	}
	return pkg, nil
}

type collector struct {
	fset  *token.FileSet
	scope *types.Scope
	syms  []symbol.Symbol
}

func (c *collector) collect(pkg *doc.Package) []symbol.Symbol {
	for _, f := range pkg.Funcs {
		c.addFunc(f)
	}
	for _, t := range pkg.Types {
		for _, f := range t.Funcs {
			c.addFunc(f)
		}
		c.syms = append(c.syms, symbol.Symbol{
			Name:    t.Name,
			Kind:    c.typeKind(t),
			Doc:     cleanDoc(t.Doc),
			Members: valueNames(t.Consts),
		})
		for _, v := range t.Vars {
			c.addValues(v)
		}
	}
	for _, v := range pkg.Consts {
		c.addValues(v)
	}
	for _, v := range pkg.Vars {
		c.addValues(v)
	}
	return c.syms
}

func (c *collector) addFunc(f *doc.Func) {
	c.syms = append(c.syms, symbol.Symbol{
		Name:      f.Name,
		Kind:      symbol.Function,
		Signature: c.signature(f.Decl),
		Doc:       cleanDoc(f.Doc),
	})
}

func (c *collector) addValues(v *doc.Value) {
	for _, name := range v.Names {
		if name == "_" {
			continue
		}
		c.syms = append(c.syms, symbol.Symbol{Name: name, Kind: symbol.Unknown})
	}
}

func (c *collector) typeKind(t *doc.Type) symbol.Kind {
	if len(valueNames(t.Consts)) > 0 {
		return symbol.Enumeration
	}
	if c.isError(t.Name) {
		return symbol.Exception
	}
	return symbol.Class
}

var errorType = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

func (c *collector) isError(name string) bool {
	obj, ok := c.scope.Lookup(name).(*types.TypeName)
	if !ok {
		return false
	}
	typ := obj.Type()
	if types.Implements(typ, errorType) {
		return true
	}
	if _, isIface := typ.Underlying().(*types.Interface); isIface {
		return false
	}
	return types.Implements(types.NewPointer(typ), errorType)
}

// signature renders the parameter and result lists of decl, for example
// "(a, b float64) float64".
func (c *collector) signature(decl *ast.FuncDecl) string {
	if decl == nil || decl.Type == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := format.Node(&buf, c.fset, decl.Type); err != nil {
		return ""
	}
	sig := strings.TrimPrefix(buf.String(), "func")
	return strings.TrimSpace(sig)
}

// localPattern prefixes relative directory names with "./" so that
// go/packages does not take them for import paths.
func localPattern(pattern, dir string) string {
	if filepath.IsAbs(pattern) || strings.HasPrefix(pattern, ".") || strings.HasSuffix(pattern, ".go") {
		return pattern
	}
	if info, err := os.Stat(filepath.Join(dir, pattern)); err == nil && info.IsDir() {
		return "./" + filepath.ToSlash(pattern)
	}
	return pattern
}

func valueNames(values []*doc.Value) []string {
	var names []string
	for _, v := range values {
		for _, n := range v.Names {
			if n != "_" && token.IsExported(n) {
				names = append(names, n)
			}
		}
	}
	return names
}

func cleanDoc(text string) string {
	return strings.TrimRight(text, " \t\n")
}
