package keycode

import "strings"

// Token is the parsed form of one raw key behavior token. A token is either
// simple text or a two-argument hold/tap wrapper such as U_MT(LCTRL, A) or
// U_LT(U_NAV, TAB). Only the tap argument of a wrapper is ever displayed.
type Token struct {
	Text string // simple token text, or the wrapper macro name
	Hold string // raw hold-side argument (wrapper only)
	Tap  string // raw tap-side argument (wrapper only)

	wrapper bool
}

// IsWrapper reports whether the token is a hold/tap wrapper.
func (t Token) IsWrapper() bool { return t.wrapper }

// ParseToken classifies a raw token. Anything that is not an identifier
// followed by a balanced parenthesized list of exactly two top-level
// arguments is a simple token; malformed nesting never fails, it just
// degrades to simple.
func ParseToken(raw string) Token {
	raw = strings.TrimSpace(raw)
	open := strings.IndexByte(raw, '(')
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return Token{Text: raw}
	}
	name := strings.TrimSpace(raw[:open])
	if !isIdentifier(name) {
		return Token{Text: raw}
	}
	args, ok := splitArgs(raw[open+1 : len(raw)-1])
	if !ok || len(args) != 2 {
		return Token{Text: raw}
	}
	return Token{Text: name, Hold: args[0], Tap: args[1], wrapper: true}
}

// splitArgs splits a macro argument list at top-level commas. It reports
// false for unbalanced parentheses.
func splitArgs(s string) ([]string, bool) {
	var args []string
	var current strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
			current.WriteRune(r)
		case ')':
			depth--
			if depth < 0 {
				return nil, false
			}
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(current.String()))
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, false
	}
	args = append(args, strings.TrimSpace(current.String()))
	return args, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
