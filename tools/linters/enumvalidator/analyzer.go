// Package enumvalidator reports string literals written into enum-typed struct fields.
// Enum values must come from the declared constants so IsValid and the JSON contract
// cannot drift apart.
package enumvalidator

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "enumvalidator",
	Doc:      "reports enum fields assigned string literals instead of declared constants",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.CompositeLit)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch node := n.(type) {
		case *ast.AssignStmt:
			if len(node.Lhs) != len(node.Rhs) {
				return
			}
			for i, lhs := range node.Lhs {
				sel, ok := lhs.(*ast.SelectorExpr)
				if !ok {
					continue
				}
				checkValue(pass, sel.Sel.Name, pass.TypesInfo.TypeOf(sel), node.Rhs[i])
			}
		case *ast.CompositeLit:
			if _, ok := underlyingStruct(pass.TypesInfo.TypeOf(node)); !ok {
				return
			}
			for _, elt := range node.Elts {
				kv, ok := elt.(*ast.KeyValueExpr)
				if !ok {
					continue
				}
				key, ok := kv.Key.(*ast.Ident)
				if !ok {
					continue
				}
				checkValue(pass, key.Name, pass.TypesInfo.TypeOf(key), kv.Value)
			}
		}
	})

	return nil, nil
}

func checkValue(pass *analysis.Pass, field string, typ types.Type, value ast.Expr) {
	lit, ok := ast.Unparen(value).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return
	}
	if !isEnum(typ) {
		return
	}
	pass.Reportf(lit.Pos(), "enum field %s assigned string literal %s; use a declared constant", field, lit.Value)
}

// isEnum reports whether t is a named string type with at least one constant
// of that type declared in its package.
func isEnum(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsString == 0 {
		return false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}
	scope := obj.Pkg().Scope()
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok && types.Identical(c.Type(), named) {
			return true
		}
	}
	return false
}

func underlyingStruct(t types.Type) (*types.Struct, bool) {
	if t == nil {
		return nil, false
	}
	if ptr, ok := t.Underlying().(*types.Pointer); ok {
		t = ptr.Elem()
	}
	s, ok := t.Underlying().(*types.Struct)
	return s, ok
}
