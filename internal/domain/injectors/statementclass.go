package injectors

import "go/ast"

// Injectable reports whether stmt is a recognised executable statement
// form, per the injectable-statement rule of spec.md §4.1. This
// generalizes the teacher's narrower per-kind switch in
// mutagens/statement.go (which only recognised assignment, expression,
// defer, go and send statements for deletion) into the full table the
// step-injection rule needs.
func Injectable(stmt ast.Stmt) bool {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		return true
	case *ast.AssignStmt:
		return true
	case *ast.ExprStmt:
		return injectableExpr(s.X)
	case *ast.ReturnStmt:
		return true
	case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt,
		*ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
		return true
	case *ast.BranchStmt:
		return true
	case *ast.DeferStmt:
		return true
	case *ast.GoStmt:
		return true
	case *ast.SendStmt:
		return true
	case *ast.IncDecStmt:
		return true
	case *ast.LabeledStmt:
		return Injectable(s.Stmt)
	default:
		return false
	}
}

// injectableExpr narrows *ast.ExprStmt to the expression forms spec.md
// lists explicitly: calls, field access, deref, array/slice access and
// grouped expressions. Go's grammar only allows a call expression as a
// bare expression statement in syntactically valid source, so the other
// cases are reachable only via the AST the walker itself builds from
// already-parsed, already-valid source — kept for fidelity with the
// spec's wording rather than because malformed input could reach them.
func injectableExpr(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.CallExpr:
		return true
	case *ast.SelectorExpr:
		return true
	case *ast.StarExpr:
		return true
	case *ast.IndexExpr:
		return true
	case *ast.ParenExpr:
		return true
	default:
		return false
	}
}

// IsBreakMarker reports whether stmt is the bare sentinel identifier
// BREAK used as a statement — the textual marker spec.md's glossary
// names as the stand-in for the original language's breakpoint literal.
func IsBreakMarker(stmt ast.Stmt) (*ast.Ident, bool) {
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return nil, false
	}

	ident, ok := es.X.(*ast.Ident)
	if !ok || ident.Name != "BREAK" {
		return nil, false
	}

	return ident, true
}

// IsStepEnableMarker reports whether stmt is a bare, argument-less call
// to debug.EnableStep(), the step-mode sentinel of spec.md §4.1 step 6.
func IsStepEnableMarker(stmt ast.Stmt) bool {
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return false
	}

	call, ok := es.X.(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return false
	}

	switch fn := call.Fun.(type) {
	case *ast.SelectorExpr:
		return fn.Sel.Name == "EnableStep"
	case *ast.Ident:
		return fn.Name == "EnableStep"
	default:
		return false
	}
}

// DiscardedName reports the variable name discarded by stmt if stmt is
// the Go idiom `_ = name` — the stand-in for the original's
// `discard X;` statement (spec.md §4.1 step 6, §9).
func DiscardedName(stmt ast.Stmt) (string, bool) {
	assign, ok := stmt.(*ast.AssignStmt)
	if !ok || assign.Tok.String() != "=" {
		return "", false
	}

	if len(assign.Lhs) != 1 || len(assign.Rhs) != 1 {
		return "", false
	}

	lhs, ok := assign.Lhs[0].(*ast.Ident)
	if !ok || lhs.Name != "_" {
		return "", false
	}

	rhs, ok := assign.Rhs[0].(*ast.Ident)
	if !ok {
		return "", false
	}

	return rhs.Name, true
}
