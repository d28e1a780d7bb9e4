package keycode

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newTestMap(t *testing.T) *Map {
	t.Helper()
	m, err := NewMap()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMapLoadsEmbeddedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layersheet.keycode")
	defer teardown()
	//
	m := newTestMap(t)
	for code, want := range map[string]string{
		"&kp A":     "A",
		"&kp COMMA": ",",
		"&kp LEFT":  "←",
		"&kp LCTRL": "LCTRL",
		"&kp BSPC":  "BSPC",
		"U_CPY":     "CPY",
		"U_BOOT":    "BOOT",
	} {
		got, ok := m.Lookup(code)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", code, got, ok, want)
		}
	}
	if _, ok := m.Lookup("&kp NO_SUCH_KEY"); ok {
		t.Error("Lookup of unknown code should report not found")
	}
}

func TestTranslate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layersheet.keycode")
	defer teardown()
	//
	m := newTestMap(t)
	tests := []struct {
		name string
		raw  string
		text string
		kind Kind
	}{
		{"direct lookup", "&kp A", "A", KindText},
		{"not present", "U_NP", "", KindAbsent},
		{"not available", "U_NA", "-", KindEmpty},
		{"mod tap extracts tap side", "U_MT(LCTRL, A)", "A", KindText},
		{"mod tap with spaces", "U_MT( LCTRL , A )", "A", KindText},
		{"layer tap extracts tap side", "U_LT(U_NAV, TAB)", "TAB", KindText},
		{"layer tap with kp prefix", "U_LT(U_NAV, &kp TAB)", "TAB", KindText},
		{"mod tap of symbol", "U_MT(RALT, DOT)", ".", KindText},
		{"nested wrapper", "U_LT(U_NAV, U_MT(LSHFT, SPACE))", "SPACE", KindText},
		{"layer transition", "&u_to_U_NAV", "→NAV", KindText},
		{"layer transition unknown layer", "&u_to_U_GAMING", "→GAMING", KindText},
		{"unknown kp code stays visible", "&kp UNKNOWN_KEY", "&kp UNKNOWN_KEY", KindText},
		{"arbitrary junk stays visible", "frobnicate 42", "frobnicate 42", KindText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Translate(tt.raw)
			if got.Text != tt.text || got.Kind != tt.kind {
				t.Errorf("Translate(%q) = {%q %v}; want {%q %v}", tt.raw, got.Text, got.Kind, tt.text, tt.kind)
			}
		})
	}
}

// The hold side of a wrapper must never leak into the display label.
func TestTranslateDiscardsHoldSide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layersheet.keycode")
	defer teardown()
	//
	m := newTestMap(t)
	for _, raw := range []string{"U_MT(LCTRL, A)", "U_MT(LSHFT, F)", "U_LT(U_BUTTON, Z)"} {
		label := m.Translate(raw)
		for _, hold := range []string{"LCTRL", "LSHFT", "BUTTON"} {
			if strings.Contains(label.Text, hold) {
				t.Errorf("Translate(%q) = %q leaks the hold argument", raw, label.Text)
			}
		}
	}
}

func TestLabelString(t *testing.T) {
	if s := (Label{Text: "A"}).String(); s != "A" {
		t.Errorf("text label String() = %q", s)
	}
	if s := (Label{Kind: KindEmpty}).String(); s != "-" {
		t.Errorf("empty label String() = %q; want dash", s)
	}
}
