/*
Package keycode translates raw ZMK key behavior tokens into display labels.

Translation is total: every raw token yields a label. Recognized codes come
from an embedded YAML table (key press behaviors such as "&kp A", mouse and
clipboard behaviors, media keys); hold/tap wrapper macros resolve recursively
through their tap argument; layer-transition behaviors get arrow labels; and
anything unrecognized falls back to the raw token text so that unknown codes
stay visible in the output instead of failing the run.
*/
package keycode

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'layersheet.keycode'
func tracer() tracing.Trace {
	return tracing.Select("layersheet.keycode")
}

// Dialect markers with structural meaning.
const (
	NotPresent = "U_NP" // position physically absent, nothing rendered
	NotAvail   = "U_NA" // position present but unassigned, rendered as a gray dash

	// toLayerPrefix starts every layer-transition behavior token.
	toLayerPrefix = "&u_to_U_"

	// LayerMarker prefixes display labels of layer transitions.
	LayerMarker = "→"

	// EmptyLabel is the display text of an unassigned key slot.
	EmptyLabel = "-"
)

// Kind distinguishes the three display states of a key slot.
type Kind int

const (
	KindText   Kind = iota // a regular visible label
	KindEmpty              // unassigned slot, rendered as a gray dash
	KindAbsent             // physically absent, not rendered at all
)

// Label is the display form of one key position.
type Label struct {
	Text string
	Kind Kind
}

// IsEmpty reports whether the label renders as an unassigned slot.
func (l Label) IsEmpty() bool { return l.Kind == KindEmpty }

// IsAbsent reports whether the position is physically absent.
func (l Label) IsAbsent() bool { return l.Kind == KindAbsent }

// String returns the text rendered for this label.
func (l Label) String() string {
	if l.Kind == KindEmpty {
		return EmptyLabel
	}
	return l.Text
}

//go:embed keycodes.yaml
var keycodesYAML []byte

// Map holds the static raw-code to display-label table.
type Map struct {
	labels map[string]string
}

// NewMap loads the translation table embedded in the package.
func NewMap() (*Map, error) {
	var byCategory map[string]map[string]string
	if err := yaml.Unmarshal(keycodesYAML, &byCategory); err != nil {
		return nil, fmt.Errorf("key code table: %w", err)
	}
	m := &Map{labels: make(map[string]string)}
	for _, codes := range byCategory {
		for code, label := range codes {
			m.labels[code] = label
		}
	}
	tracer().Debugf("loaded %d key code translations", len(m.labels))
	return m, nil
}

// Lookup returns the display label for an exactly matching code.
func (m *Map) Lookup(code string) (string, bool) {
	label, ok := m.labels[code]
	return label, ok
}

// Translate maps one raw behavior token to its display label. The lookup
// order is: structural markers, exact table match, table match with an
// implied "&kp " prefix, layer-transition prefix, recursive tap-side
// resolution for hold/tap wrappers, and finally the raw text itself.
// Translate never fails.
func (m *Map) Translate(raw string) Label {
	raw = strings.TrimSpace(raw)
	switch raw {
	case NotPresent:
		return Label{Kind: KindAbsent}
	case NotAvail:
		return Label{Text: EmptyLabel, Kind: KindEmpty}
	}
	if label, ok := m.labels[raw]; ok {
		return Label{Text: label}
	}
	if !strings.HasPrefix(raw, "&") {
		if label, ok := m.labels["&kp "+raw]; ok {
			return Label{Text: label}
		}
	}
	if layer, ok := strings.CutPrefix(raw, toLayerPrefix); ok {
		return Label{Text: LayerMarker + layer}
	}
	if tok := ParseToken(raw); tok.IsWrapper() {
		return m.Translate(tok.Tap)
	}
	tracer().Debugf("no translation for %q, falling back to raw text", raw)
	return Label{Text: raw}
}
