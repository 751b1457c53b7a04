package injectors

import (
	"go/ast"
	"strings"
	"unicode"

	m "github.com/filedbg/filedbg/internal/model"
)

// ScanGlobals generalizes the teacher's top-level numeric-literal scan
// (mutagens/numbers.go) into a scan for the names a function body may
// legitimately capture as globals (spec.md §3, "Global variable" /
// §4.1 step 4).
func ScanGlobals(file *ast.File) []m.Global {
	var globals []m.Global

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		switch gen.Tok.String() {
		case "var":
			globals = append(globals, scanValueSpecs(gen, false)...)
		case "const":
			globals = append(globals, scanValueSpecs(gen, true)...)
		}
	}

	return globals
}

func scanValueSpecs(gen *ast.GenDecl, isConst bool) []m.Global {
	var globals []m.Global

	for _, spec := range gen.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		threadLocal := isThreadLocalType(vs.Type)

		for _, name := range vs.Names {
			if name.Name == "_" {
				continue
			}

			globals = append(globals, m.Global{
				Name: name.Name,
				Kind: classifyKind(name.Name, isConst, threadLocal),
			})
		}
	}

	return globals
}

func classifyKind(name string, isConst, threadLocal bool) m.GlobalKind {
	if threadLocal {
		return m.GlobalThreadLocal
	}

	exported := isExported(name)

	switch {
	case isConst && exported:
		return m.GlobalExportedConst
	case isConst:
		return m.GlobalConst
	case exported:
		return m.GlobalExportedVar
	default:
		return m.GlobalRegular
	}
}

func isExported(name string) bool {
	if name == "" {
		return false
	}

	return unicode.IsUpper([]rune(name)[0])
}

// isThreadLocalType reports whether typ is a reference to runtime.TLS[T]
// (or a bare "TLS" identifier, for files that dot-import the runtime
// package), the Go stand-in for the original's thread_local global kind.
func isThreadLocalType(typ ast.Expr) bool {
	switch t := typ.(type) {
	case *ast.IndexExpr:
		return isThreadLocalType(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name == "TLS"
	case *ast.Ident:
		return t.Name == "TLS"
	default:
		return false
	}
}

// IsDiscard reports whether name is Go's blank identifier, the idiomatic
// stand-in for the original source language's discard statement.
func IsDiscard(name string) bool {
	return strings.TrimSpace(name) == "_"
}
