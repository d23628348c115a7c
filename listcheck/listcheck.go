// Command listcheck reports calls whose error result is silently dropped
// when the callee belongs to one of the container packages. Those errors
// are the only signal that a positional insert or delete was rejected.
package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/singlechecker"
)

const defaultPkgs = "github.com/Thunsis/Algorithm/list," +
	"github.com/Thunsis/Algorithm/dlist," +
	"github.com/Thunsis/Algorithm/stack"

var Analyzer = &analysis.Analyzer{
	Name: "listcheck",
	Doc:  "Find dropped errors from list, dlist, and stack operations",
	Run:  run,
}

var pkgs string

func init() {
	Analyzer.Flags.StringVar(&pkgs, "pkgs", defaultPkgs, "Comma-separated import paths of the checked packages")
}

func run(pass *analysis.Pass) (any, error) {
	checked := make(map[string]bool)
	for _, p := range strings.Split(pkgs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			checked[p] = true
		}
	}
	for _, f := range pass.Files {
		ast.Inspect(f, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.ExprStmt:
				if call, ok := n.X.(*ast.CallExpr); ok {
					checkCall(pass, checked, call, "")
				}
			case *ast.AssignStmt:
				// _ = l.DeleteAt(3)
				if len(n.Lhs) == 1 && len(n.Rhs) == 1 && isBlank(n.Lhs[0]) {
					if call, ok := n.Rhs[0].(*ast.CallExpr); ok {
						checkCall(pass, checked, call, " (assigned to _)")
					}
				}
			}
			return true
		})
	}
	return nil, nil
}

func checkCall(pass *analysis.Pass, checked map[string]bool, call *ast.CallExpr, suffix string) {
	fn := callee(pass, call)
	if fn == nil || fn.Pkg() == nil || !checked[fn.Pkg().Path()] {
		return
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return
	}
	res := sig.Results()
	if res.Len() == 0 || !isError(res.At(res.Len()-1).Type()) {
		return
	}
	pass.ReportRangef(call, "error result of %s is not checked%s", fn.Name(), suffix)
}

// callee returns the function or method called by call, or nil if it is
// not a statically known function.
func callee(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	var ident *ast.Ident
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		ident = fun
	case *ast.SelectorExpr:
		ident = fun.Sel
	case *ast.IndexExpr: // generic function with explicit instantiation
		return calleeOf(pass, fun.X)
	case *ast.IndexListExpr:
		return calleeOf(pass, fun.X)
	default:
		return nil
	}
	fn, _ := pass.TypesInfo.Uses[ident].(*types.Func)
	return fn
}

func calleeOf(pass *analysis.Pass, x ast.Expr) *types.Func {
	return callee(pass, &ast.CallExpr{Fun: x})
}

var errorType = types.Universe.Lookup("error").Type()

func isError(t types.Type) bool {
	return types.Identical(t, errorType)
}

func isBlank(e ast.Expr) bool {
	ident, ok := e.(*ast.Ident)
	return ok && ident.Name == "_"
}

func main() {
	singlechecker.Main(Analyzer)
}
