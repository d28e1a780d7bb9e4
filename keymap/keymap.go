/*
Package keymap extracts layer definitions from miryoku-style ZMK config files.

A config file declares each keyboard layer as a C preprocessor macro:

	#define MIRYOKU_LAYER_BASE \
	&kp Q,    &kp W,    ...    \
	U_NP,     U_NP,     U_LT(U_NAV, TAB), ...

The macro body is one logical line spread over backslash continuations, with
key behavior tokens separated by commas. Commas inside nested macro calls
such as U_MT(LCTRL, A) do not separate keys, so splitting tracks parenthesis
depth.

This package is a pure text transformation: it locates headers, joins
continuations, and splits the body into raw tokens. Translation of tokens to
display labels lives in package keycode; positional interpretation lives in
package layout.
*/
package keymap

import (
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'layersheet.keymap'
func tracer() tracing.Trace {
	return tracing.Select("layersheet.keymap")
}

// headerPrefix starts every layer definition header in the dialect.
const headerPrefix = "#define MIRYOKU_LAYER_"

// headerPattern matches one definition header line and captures the layer
// name and the remainder of the line.
var headerPattern = regexp.MustCompile(`^\s*#define\s+MIRYOKU_LAYER_([A-Z][A-Z0-9_]*)(.*)$`)

// LayerDef is the raw, untranslated result of extracting one layer.
type LayerDef struct {
	Name string   // layer name as it appears after the header prefix
	Keys []string // raw behavior tokens in source order
}

// Extract locates the definition of the named layer in content, joins its
// continuation lines into one logical line and splits that line into raw key
// tokens. It does not validate the token count; see package layout.
//
// It returns LayerNotFoundError if no header matches, and
// MalformedDefinitionError if the definition still expects a continuation
// line at end of input or has an empty body.
func Extract(content, name string) (LayerDef, error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil || m[1] != name {
			continue
		}
		body, err := joinContinuations(name, m[2], lines[i+1:])
		if err != nil {
			return LayerDef{}, err
		}
		keys := SplitKeys(body)
		if len(keys) == 0 {
			return LayerDef{}, MalformedDefinitionError{Layer: name, Reason: "empty definition body"}
		}
		tracer().Debugf("extracted layer %s with %d keys", name, len(keys))
		return LayerDef{Name: name, Keys: keys}, nil
	}
	return LayerDef{}, LayerNotFoundError{Layer: name}
}

// joinContinuations consumes the header line remainder plus all backslash
// continuation lines and returns the joined logical line. The first line not
// ending in a backslash terminates the body.
func joinContinuations(name, first string, rest []string) (string, error) {
	var sb strings.Builder
	line, cont := stripContinuation(first)
	sb.WriteString(line)
	for cont {
		if len(rest) == 0 {
			return "", MalformedDefinitionError{
				Layer:  name,
				Reason: "line continuation at end of input",
			}
		}
		line, cont = stripContinuation(rest[0])
		rest = rest[1:]
		sb.WriteString(" ")
		sb.WriteString(line)
	}
	return sb.String(), nil
}

// stripContinuation removes a trailing backslash marker, reporting whether
// one was present. A line consisting of just a backslash is an empty but
// legal continuation.
func stripContinuation(line string) (string, bool) {
	line = strings.TrimRight(line, " \t\r")
	if strings.HasSuffix(line, "\\") {
		return line[:len(line)-1], true
	}
	return line, false
}

// SplitKeys splits a joined definition body into raw key tokens at top-level
// commas. Commas nested inside parentheses belong to a macro argument list
// and never split. Tokens are whitespace-trimmed; empty pieces from trailing
// commas are dropped.
func SplitKeys(body string) []string {
	var keys []string
	var current strings.Builder
	depth := 0
	for _, r := range body {
		switch r {
		case '(':
			depth++
			current.WriteRune(r)
		case ')':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				if k := strings.TrimSpace(current.String()); k != "" {
					keys = append(keys, k)
				}
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if k := strings.TrimSpace(current.String()); k != "" {
		keys = append(keys, k)
	}
	return keys
}

// Discover scans the whole config text for layer definition headers and
// returns the deduplicated layer names in source order.
func Discover(content string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// LayerFilter selects which discovered layers are displayed. An empty Allow
// list admits everything not denied; a non-empty Allow list admits only its
// members (minus denied ones).
type LayerFilter struct {
	Allow []string
	Deny  []string
}

// Admit reports whether the named layer passes the filter.
func (f LayerFilter) Admit(name string) bool {
	for _, d := range f.Deny {
		if d == name {
			return false
		}
	}
	if len(f.Allow) == 0 {
		return true
	}
	for _, a := range f.Allow {
		if a == name {
			return true
		}
	}
	return false
}

// Select applies the filter to a discovered name list, preserving order.
func (f LayerFilter) Select(names []string) []string {
	var out []string
	for _, n := range names {
		if f.Admit(n) {
			out = append(out, n)
		}
	}
	return out
}
