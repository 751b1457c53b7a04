package domain

import (
	"go/ast"
	"go/token"

	"github.com/filedbg/filedbg/internal/domain/injectors"
	m "github.com/filedbg/filedbg/internal/model"
)

// walkContext carries everything the function-body walk needs to
// classify statements and turn matches into edits (spec.md §3, "Walk
// context"). One walkContext is built per file and threaded through
// every *ast.FuncDecl and function literal the file contains.
type walkContext struct {
	fset     *token.FileSet
	content  []byte
	filePath string
	fileHash uint32

	globalNames map[string]struct{}
	scope       injectors.ScopeStack
	ignores     ignoreIndex

	funcName string
	stepMode bool

	edits           []m.Edit
	injectedInFunc  bool
	pendingDiscards []m.Edit
}

func newWalkContext(fset *token.FileSet, content []byte, filePath string, fileHash uint32, globals []m.Global, stepMode bool, ignores ignoreIndex) *walkContext {
	names := make(map[string]struct{}, len(globals))
	for _, g := range globals {
		names[g.Name] = struct{}{}
	}

	return &walkContext{
		fset:        fset,
		content:     content,
		filePath:    filePath,
		fileHash:    fileHash,
		globalNames: names,
		ignores:     ignores,
		stepMode:    stepMode,
	}
}

// names returns the in-scope local names followed by any file-level
// globals not shadowed by one of them — the "current scope-and-globals
// name list" spec.md §4.1 step 6 requires every injected call to carry.
func (ctx *walkContext) names() []string {
	scoped := ctx.scope.Names()

	seen := make(map[string]struct{}, len(scoped)+len(ctx.globalNames))
	for _, n := range scoped {
		seen[n] = struct{}{}
	}

	all := append([]string{}, scoped...)

	for n := range ctx.globalNames {
		if _, ok := seen[n]; ok {
			continue
		}

		all = append(all, n)
	}

	return all
}

func (ctx *walkContext) isTracked(name string) bool {
	if _, ok := ctx.globalNames[name]; ok {
		return true
	}

	for _, n := range ctx.scope.Names() {
		if n == name {
			return true
		}
	}

	return false
}

// walkTopLevel visits every *ast.FuncDecl in file, skipping ones with no
// body (external/assembly declarations) and ones a //filedbg:ignore
// directive exempts entirely.
func (ctx *walkContext) walkTopLevel(file *ast.File) {
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body == nil {
			continue
		}

		if ctx.ignores.ignoresFunc(fd.Pos(), kindBreak) && ctx.ignores.ignoresFunc(fd.Pos(), kindStep) {
			continue
		}

		ctx.walkFunc(fd.Name.Name, fd.Type, fd.Body)
	}
}

// walkFunc walks one function body, saving and restoring the scope
// depth, the enclosing function's name, its injected-anything flag and
// its staged discard deletions, so nested function literals get their
// own independent commit decision (spec.md §3, walk context; §4.1 step
// 6): staged deletions are committed only if an injection was planned
// anywhere in the same function, before or after the discard.
func (ctx *walkContext) walkFunc(name string, ft *ast.FuncType, body *ast.BlockStmt) {
	if body == nil {
		return
	}

	depth := ctx.scope.Snapshot()
	injectors.PushParams(&ctx.scope, ft)

	savedFunc := ctx.funcName
	savedInjected := ctx.injectedInFunc
	savedPending := ctx.pendingDiscards

	ctx.funcName = name
	ctx.injectedInFunc = false
	ctx.pendingDiscards = nil

	ctx.walkStmtList(body.List)

	if ctx.injectedInFunc {
		ctx.edits = append(ctx.edits, ctx.pendingDiscards...)
	}

	ctx.funcName = savedFunc
	ctx.injectedInFunc = savedInjected
	ctx.pendingDiscards = savedPending
	ctx.scope.Truncate(depth)
}

func (ctx *walkContext) walkBlock(b *ast.BlockStmt) {
	if b == nil {
		return
	}

	depth := ctx.scope.Snapshot()
	ctx.walkStmtList(b.List)
	ctx.scope.Truncate(depth)
}

func (ctx *walkContext) walkStmtList(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		ctx.visitStmt(stmt)

		switch stmt.(type) {
		case *ast.DeclStmt, *ast.AssignStmt:
			injectors.PushDeclNames(&ctx.scope, stmt)
		}
	}
}

// visitStmt classifies one statement, plans whatever edit it calls for,
// and recurses into any nested statement lists or expressions it owns.
func (ctx *walkContext) visitStmt(stmt ast.Stmt) {
	line := ctx.fset.Position(stmt.Pos()).Line

	if ident, ok := injectors.IsBreakMarker(stmt); ok {
		if !ctx.ignores.ignoresLine(line, kindBreak) {
			if edit, ok := injectors.BreakpointMarker(ctx.fset, ctx.content, ident.Pos(), ctx.funcName, ctx.filePath, ctx.fileHash, ctx.names()); ok {
				ctx.edits = append(ctx.edits, edit)
				ctx.injectedInFunc = true
			}
		}

		return
	}

	if injectors.IsStepEnableMarker(stmt) {
		if start, end := injectors.LineBounds(ctx.content, offsetOf(ctx.fset, stmt.Pos())); end > start {
			ctx.edits = append(ctx.edits, m.Edit{Offset: start, DeleteLen: end - start})
		}

		if !ctx.ignores.ignoresLine(line, kindStep) {
			ctx.stepMode = true
		}

		return
	}

	if name, ok := injectors.DiscardedName(stmt); ok && ctx.isTracked(name) {
		if edit, ok := injectors.DiscardDeletion(ctx.fset, ctx.content, stmt); ok {
			ctx.pendingDiscards = append(ctx.pendingDiscards, edit)
		}

		return
	}

	if ctx.stepMode && injectors.Injectable(stmt) && !ctx.ignores.ignoresLine(line, kindStep) {
		if edit, ok := injectors.StepInjection(ctx.fset, ctx.content, stmt.Pos(), ctx.funcName, ctx.filePath, ctx.fileHash, ctx.names()); ok {
			ctx.edits = append(ctx.edits, edit)
			ctx.injectedInFunc = true
		}
	}

	ctx.descend(stmt)
}

// visitHeaderInit handles an if/for/switch/type-switch header's init
// sub-statement. It must never plan an injection there: a step or
// breakpoint insertion positioned at the init statement's offset would
// land inside the one-line header, splitting "if x := f(); cond {"
// into uncompilable Go. It still has to bind whatever names the init
// statement declares — the header's own scope, in effect from the init
// onward — and scan any function literals it contains, so it recurses
// through descend for that but skips visitStmt's injection branch
// entirely.
func (ctx *walkContext) visitHeaderInit(stmt ast.Stmt) {
	if stmt == nil {
		return
	}

	ctx.descend(stmt)

	switch stmt.(type) {
	case *ast.DeclStmt, *ast.AssignStmt:
		injectors.PushDeclNames(&ctx.scope, stmt)
	}
}

// descend recurses into any statement list or nested expression a
// compound statement owns, pushing and truncating scope around each
// form that binds names (spec.md §4.1 step 7).
func (ctx *walkContext) descend(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		ctx.walkBlock(s)

	case *ast.IfStmt:
		depth := ctx.scope.Snapshot()
		ctx.visitHeaderInit(s.Init)
		ctx.walkBlock(s.Body)

		if s.Else != nil {
			ctx.visitStmt(s.Else)
		}

		ctx.scope.Truncate(depth)

	case *ast.ForStmt:
		depth := ctx.scope.Snapshot()
		ctx.visitHeaderInit(s.Init)
		ctx.walkBlock(s.Body)
		ctx.scope.Truncate(depth)

	case *ast.RangeStmt:
		depth := ctx.scope.Snapshot()
		injectors.PushDeclNames(&ctx.scope, s)
		ctx.walkBlock(s.Body)
		ctx.scope.Truncate(depth)

	case *ast.SwitchStmt:
		depth := ctx.scope.Snapshot()
		ctx.visitHeaderInit(s.Init)
		ctx.walkCaseClauses(s.Body)
		ctx.scope.Truncate(depth)

	case *ast.TypeSwitchStmt:
		depth := ctx.scope.Snapshot()
		ctx.visitHeaderInit(s.Init)

		if assign, ok := s.Assign.(*ast.AssignStmt); ok {
			injectors.PushDeclNames(&ctx.scope, assign)
		}

		ctx.walkCaseClauses(s.Body)
		ctx.scope.Truncate(depth)

	case *ast.SelectStmt:
		for _, clause := range s.Body.List {
			cc, ok := clause.(*ast.CommClause)
			if !ok {
				continue
			}

			depth := ctx.scope.Snapshot()

			if cc.Comm != nil {
				ctx.visitStmt(cc.Comm)
			}

			ctx.walkStmtList(cc.Body)
			ctx.scope.Truncate(depth)
		}

	case *ast.LabeledStmt:
		ctx.visitStmt(s.Stmt)

	case *ast.AssignStmt:
		for _, rhs := range s.Rhs {
			ctx.scanFuncLits(rhs)
		}

	case *ast.ExprStmt:
		ctx.scanFuncLits(s.X)

	case *ast.ReturnStmt:
		for _, r := range s.Results {
			ctx.scanFuncLits(r)
		}

	case *ast.GoStmt:
		ctx.scanFuncLits(s.Call)

	case *ast.DeferStmt:
		ctx.scanFuncLits(s.Call)

	case *ast.DeclStmt:
		ctx.scanFuncLits(s.Decl)

	case *ast.SendStmt:
		ctx.scanFuncLits(s.Value)
	}
}

func (ctx *walkContext) walkCaseClauses(body *ast.BlockStmt) {
	for _, clause := range body.List {
		cc, ok := clause.(*ast.CaseClause)
		if !ok {
			continue
		}

		depth := ctx.scope.Snapshot()
		ctx.walkStmtList(cc.Body)
		ctx.scope.Truncate(depth)
	}
}

// scanFuncLits finds every function literal reachable from n without
// descending past the first one found along any path — the first-found
// literal's own body is walked by walkFunc, which independently finds
// any further-nested literals, so a second pass here would visit (and
// double-instrument) the same statements (spec.md §4.1 step 6, "function
// literals appearing inside expressions").
func (ctx *walkContext) scanFuncLits(n ast.Node) {
	if n == nil {
		return
	}

	ast.Inspect(n, func(node ast.Node) bool {
		lit, ok := node.(*ast.FuncLit)
		if !ok {
			return true
		}

		ctx.walkFunc(ctx.funcName, lit.Type, lit.Body)

		return false
	})
}

func offsetOf(fset *token.FileSet, pos token.Pos) int {
	offset, _ := injectors.OffsetForPos(fset, pos)

	return offset
}
