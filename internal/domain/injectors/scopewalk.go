package injectors

import (
	"go/ast"

	m "github.com/filedbg/filedbg/internal/model"
)

// ScopeStack is a stack of locally declared names, generalizing the
// teacher's line-range-based CodeScope tracking (mutagens/loop.go) into
// the textual-lexical-precedence model spec.md §3/§9 calls for: a name
// is "in scope" once pushed, until the enclosing block it was pushed in
// is truncated away.
type ScopeStack struct {
	vars []m.ScopeVar
}

// Push adds name to the top of the stack.
func (s *ScopeStack) Push(name string) {
	if name == "" || IsDiscard(name) {
		return
	}

	s.vars = append(s.vars, m.ScopeVar{Name: name})
}

// Snapshot returns the current stack depth, to be passed to Truncate on
// block exit.
func (s *ScopeStack) Snapshot() int {
	return len(s.vars)
}

// Truncate pops every variable pushed since depth was captured by Snapshot.
func (s *ScopeStack) Truncate(depth int) {
	s.vars = s.vars[:depth]
}

// Names returns the names currently in scope, in declaration order.
func (s *ScopeStack) Names() []string {
	names := make([]string, len(s.vars))
	for i, v := range s.vars {
		names[i] = v.Name
	}

	return names
}

// PushDeclNames pushes every name bound by a var/:= declaration form.
// It covers *ast.DeclStmt (var), the left-hand side of *ast.AssignStmt
// when Tok is token.DEFINE, and the key/value identifiers of a
// *ast.RangeStmt — the three binding forms the walker needs to recognize
// while descending into a block (spec.md §4.1 step 6, "Variable
// declaration").
func PushDeclNames(stack *ScopeStack, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		pushGenDecl(stack, s.Decl)
	case *ast.AssignStmt:
		if s.Tok.String() == ":=" {
			pushIdentExprs(stack, s.Lhs)
		}
	case *ast.RangeStmt:
		pushIfIdent(stack, s.Key)
		pushIfIdent(stack, s.Value)
	}
}

func pushGenDecl(stack *ScopeStack, decl ast.Decl) {
	gen, ok := decl.(*ast.GenDecl)
	if !ok {
		return
	}

	for _, spec := range gen.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		for _, name := range vs.Names {
			stack.Push(name.Name)
		}
	}
}

func pushIdentExprs(stack *ScopeStack, exprs []ast.Expr) {
	for _, e := range exprs {
		pushIfIdent(stack, e)
	}
}

func pushIfIdent(stack *ScopeStack, e ast.Expr) {
	if e == nil {
		return
	}

	if ident, ok := e.(*ast.Ident); ok {
		stack.Push(ident.Name)
	}
}

// PushParams pushes a function's parameter and named-result identifiers
// onto the stack on function entry (spec.md §4.1 step 7).
func PushParams(stack *ScopeStack, fl *ast.FuncType) {
	pushFieldListNames(stack, fl.Params)
	pushFieldListNames(stack, fl.Results)
}

func pushFieldListNames(stack *ScopeStack, fields *ast.FieldList) {
	if fields == nil {
		return
	}

	for _, field := range fields.List {
		for _, name := range field.Names {
			stack.Push(name.Name)
		}
	}
}
