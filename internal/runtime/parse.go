package runtime

import (
	"fmt"
	"go/scanner"
	"go/token"
	"os"
	"strconv"
)

// ParseBreakpointFile tokenizes the breakpoints { { file = "...", line =
// N, enabled = bool }, ... } grammar with go/scanner.Scanner. The
// scanner strips comments when ScanComments is left unset, so trailing
// // and /* */ comments inside an entry need no special handling here.
// Entries past MaxBreakpoints are dropped with a diagnostic on stderr.
func ParseBreakpointFile(content []byte) ([]Breakpoint, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("breakpoints", fset.Base(), len(content))

	var s scanner.Scanner
	s.Init(file, content, nil, 0)

	var (
		entries []Breakpoint
		dropped int
	)

	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok != token.IDENT || lit != "breakpoints" {
			continue
		}

		if _, tok, _ := s.Scan(); tok != token.LBRACE {
			return nil, fmt.Errorf("expected '{' after breakpoints")
		}

		for {
			_, tok, _ := s.Scan()
			if tok == token.RBRACE || tok == token.EOF {
				break
			}

			if tok != token.LBRACE {
				continue
			}

			bp, err := parseEntry(&s)
			if err != nil {
				return nil, err
			}

			if len(entries) >= MaxBreakpoints {
				dropped++
				continue
			}

			entries = append(entries, bp)
		}

		break
	}

	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "filedbg: breakpoint file has %d entries past the %d limit, dropped\n", dropped, MaxBreakpoints)
	}

	return entries, nil
}

// parseEntry consumes tokens up to and including the closing '}' of one
// { file = "...", line = N, enabled = bool } entry. Unknown fields are
// ignored; a missing enabled defaults to true, per spec.md §6.
func parseEntry(s *scanner.Scanner) (Breakpoint, error) {
	bp := Breakpoint{Enabled: true}

	var field string

	for {
		_, tok, lit := s.Scan()

		switch tok {
		case token.RBRACE, token.EOF:
			return bp, nil
		case token.IDENT:
			if lit == "true" || lit == "false" {
				if field == "enabled" {
					bp.Enabled = lit == "true"
				}

				continue
			}

			field = lit
		case token.ASSIGN:
			// consume, value token follows
		case token.STRING:
			if field == "file" {
				unquoted, err := strconv.Unquote(lit)
				if err != nil {
					return bp, fmt.Errorf("breakpoint file field: %w", err)
				}

				bp.File = unquoted
			} else if field == "condition" {
				unquoted, err := strconv.Unquote(lit)
				if err == nil {
					bp.Condition = unquoted
				}
			}
		case token.INT:
			if field == "line" {
				n, err := strconv.Atoi(lit)
				if err != nil {
					return bp, fmt.Errorf("breakpoint line field: %w", err)
				}

				bp.Line = n
			}
		}
	}
}
