package injectors

import "strings"

// NamesLiteral renders names as a Go []string composite literal, the
// "literal array of variable names" the ABI (spec.md §6) calls for.
func NamesLiteral(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}

	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

// ValuesLiteral renders names as a Go []any composite literal whose
// elements are the bare identifiers themselves — valid at the injection
// site because every name was pushed onto the scope stack (or scanned as
// a global) while descending past its own declaration, so it is always
// addressable there.
func ValuesLiteral(names []string) string {
	return "[]any{" + strings.Join(names, ", ") + "}"
}
