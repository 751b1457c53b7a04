package formatter

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MaxPathDepth bounds how many struct levels beyond the root a path may
// descend (spec.md §4.3's compile-time explosion guard, reimplemented
// here as a runtime check since Go has no compile-time reflection).
const MaxPathDepth = 3

// MaxFieldsForAccess refuses field access on structs wider than this.
const MaxFieldsForAccess = 20

// Resolve walks path against root: dotted field names and [N]/[N..M]
// bracket forms. Ptr and Interface values are unwrapped transparently
// without consuming path depth.
func Resolve(root any, path string) (any, error) {
	v := reflect.ValueOf(root)
	depth := 0

	for _, seg := range splitPath(path) {
		v = unwrap(v)

		switch {
		case seg.isIndex:
			nv, err := indexInto(v, seg)
			if err != nil {
				return nil, err
			}

			v = nv
		default:
			v = unwrap(v)

			if v.Kind() != reflect.Struct {
				return nil, fmt.Errorf("no field access on non-struct value for %q", seg.field)
			}

			if v.NumField() > MaxFieldsForAccess {
				return nil, fmt.Errorf("No field access on %s: too many fields", shortTypeName(v.Type()))
			}

			depth++
			if depth > MaxPathDepth {
				return nil, fmt.Errorf("path depth exceeds %d struct levels", MaxPathDepth)
			}

			fv := v.FieldByName(seg.field)
			if !fv.IsValid() {
				return nil, fmt.Errorf("no field %q", seg.field)
			}

			v = fieldValue(fv)
		}
	}

	v = unwrap(v)
	if !v.IsValid() {
		return nil, nil
	}

	if v.CanInterface() {
		return v.Interface(), nil
	}

	return nil, nil
}

func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}

		v = v.Elem()
	}

	return v
}

type pathSegment struct {
	field      string
	isIndex    bool
	start, end int
	isRange    bool
}

// splitPath is the "tiny hand-written scanner" SPEC_FULL.md calls for —
// simpler than go/scanner since the grammar is just
// name(.name|[N]|[N..M])*.
func splitPath(path string) []pathSegment {
	var segs []pathSegment

	// Split on '.' only outside brackets, so "[N..M]" stays one part.
	var parts []string
	depth, start := 0, 0
	for i, c := range path {
		switch {
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == '.' && depth == 0:
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}
	parts = append(parts, path[start:])

	for _, part := range parts {
		for part != "" {
			if idx := strings.IndexByte(part, '['); idx >= 0 {
				if idx > 0 {
					segs = append(segs, pathSegment{field: part[:idx]})
				}

				end := strings.IndexByte(part[idx:], ']')
				if end < 0 {
					part = ""
					break
				}

				end += idx

				inner := part[idx+1 : end]
				segs = append(segs, parseIndexSegment(inner))

				part = part[end+1:]

				continue
			}

			segs = append(segs, pathSegment{field: part})

			break
		}
	}

	return segs
}

func parseIndexSegment(inner string) pathSegment {
	if lo, hi, ok := strings.Cut(inner, ".."); ok {
		start, _ := strconv.Atoi(lo)
		end, _ := strconv.Atoi(hi)

		return pathSegment{isIndex: true, isRange: true, start: start, end: end}
	}

	n, _ := strconv.Atoi(inner)

	return pathSegment{isIndex: true, start: n, end: n}
}

func indexInto(v reflect.Value, seg pathSegment) (reflect.Value, error) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if seg.isRange {
			if seg.start < 0 || seg.end > v.Len() || seg.start > seg.end {
				return reflect.Value{}, fmt.Errorf("index range [%d..%d] out of bounds (len %d)", seg.start, seg.end, v.Len())
			}

			return v.Slice(seg.start, seg.end), nil
		}

		if seg.start < 0 || seg.start >= v.Len() {
			return reflect.Value{}, fmt.Errorf("index %d out of bounds (len %d)", seg.start, v.Len())
		}

		return v.Index(seg.start), nil
	default:
		return reflect.Value{}, fmt.Errorf("cannot index into %s", v.Kind())
	}
}
