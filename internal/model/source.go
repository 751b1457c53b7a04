package model

// Source represents a Go source file under consideration for instrumentation.
type Source struct {
	Origin  Path
	Package string
}

// GlobalKind classifies a top-level declaration found during the global
// scan (spec.md §3, "Global variable").
type GlobalKind string

const (
	// GlobalRegular is an unexported package-level var.
	GlobalRegular GlobalKind = "regular"
	// GlobalConst is an unexported package-level const.
	GlobalConst GlobalKind = "const"
	// GlobalExportedVar is an exported package-level var.
	GlobalExportedVar GlobalKind = "exported_var"
	// GlobalExportedConst is an exported package-level const.
	GlobalExportedConst GlobalKind = "exported_const"
	// GlobalThreadLocal is a package-level var declared with type
	// runtime.TLS[T], the Go stand-in for the original's thread_local kind.
	GlobalThreadLocal GlobalKind = "thread_local"
)

// Global describes a top-level variable or constant visible to every
// function in the file it was scanned from.
type Global struct {
	Name string
	Kind GlobalKind
}

// ScopeVar describes a locally declared name, pushed onto the walker's
// scope stack when its declaration is encountered and popped on block exit.
type ScopeVar struct {
	Name string
}

// Edit is a single textual edit to apply to a source file: delete
// DeleteLen bytes starting at Offset and insert Insert in their place.
type Edit struct {
	Offset    int
	DeleteLen int
	Insert    string
}

// TransformRequest describes one invocation of the transformer.
type TransformRequest struct {
	Input       Path
	Output      Path
	StepMode    bool
	RuntimePath string
	// BuildFileName overrides the basename recognized as the host build
	// descriptor (spec.md §4.1 step 8); "tools.go" if empty.
	BuildFileName string
}

// TransformResult summarizes what the transformer did, consumed by the CLI
// layer to produce the stderr summary line and exit code of spec.md §6.
type TransformResult struct {
	Edits         int
	Globals       int
	Warning       string
	PassedThrough bool
}
