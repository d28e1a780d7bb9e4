package keycode

import "strings"

// Category is the semantic family of a key, used solely to pick its color.
type Category int

const (
	CatRegular Category = iota // letters, digits, symbols, anything unmatched
	CatModifier
	CatNavigation
	CatMouseClipboard
	CatSystem
	CatLayer // layer transition keys
	CatReset // firmware reset
	CatEmpty // unassigned slot
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CatRegular:
		return "regular"
	case CatModifier:
		return "modifier"
	case CatNavigation:
		return "navigation"
	case CatMouseClipboard:
		return "mouse-clipboard"
	case CatSystem:
		return "system"
	case CatLayer:
		return "layer"
	case CatReset:
		return "reset"
	case CatEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Fixed membership sets for category inference. Labels not in any set are
// regular keys.
var (
	modifierLabels = set("LCTRL", "LALT", "LGUI", "LSHFT", "RCTRL", "RALT", "RGUI", "RSHFT")

	navigationLabels = set("←", "→", "↑", "↓", "HOME", "END", "PgUp", "PgDn")

	mouseClipboardLabels = set(
		"BTN1", "BTN2", "BTN3",
		"M←", "M→", "M↑", "M↓",
		"WH←", "WH→", "WH↑", "WH↓",
		"RDO", "UND", "CPY", "PST", "CUT",
	)

	systemLabels = set("BSPC", "RET", "DEL", "ESC", "SPACE", "TAB")
)

// resetLabel is the single firmware-reset value.
const resetLabel = "BOOT"

func set(labels ...string) map[string]bool {
	m := make(map[string]bool, len(labels))
	for _, l := range labels {
		m[l] = true
	}
	return m
}

// Categorize infers the semantic category of a translated label. It is a
// pure function of the label, independent of key position.
func Categorize(label Label) Category {
	switch {
	case label.IsEmpty() || label.IsAbsent():
		return CatEmpty
	case label.Text == resetLabel:
		return CatReset
	case strings.HasPrefix(label.Text, LayerMarker) && len(label.Text) > len(LayerMarker):
		// a bare arrow is the RIGHT navigation key, not a transition
		return CatLayer
	case modifierLabels[label.Text]:
		return CatModifier
	case navigationLabels[label.Text]:
		return CatNavigation
	case mouseClipboardLabels[label.Text]:
		return CatMouseClipboard
	case systemLabels[label.Text]:
		return CatSystem
	default:
		return CatRegular
	}
}
