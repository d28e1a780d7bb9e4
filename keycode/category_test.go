package keycode

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		label Label
		want  Category
	}{
		{Label{Text: "A"}, CatRegular},
		{Label{Text: "7"}, CatRegular},
		{Label{Text: "LCTRL"}, CatModifier},
		{Label{Text: "RSHFT"}, CatModifier},
		{Label{Text: "←"}, CatNavigation},
		{Label{Text: "PgDn"}, CatNavigation},
		{Label{Text: "BTN1"}, CatMouseClipboard},
		{Label{Text: "CPY"}, CatMouseClipboard},
		{Label{Text: "WH↑"}, CatMouseClipboard},
		{Label{Text: "BSPC"}, CatSystem},
		{Label{Text: "SPACE"}, CatSystem},
		{Label{Text: "→NAV"}, CatLayer},
		{Label{Text: "→GAMING"}, CatLayer},
		{Label{Text: "BOOT"}, CatReset},
		{Label{Text: "-", Kind: KindEmpty}, CatEmpty},
		{Label{Kind: KindAbsent}, CatEmpty},
		{Label{Text: "&kp UNKNOWN_KEY"}, CatRegular},
	}
	for _, tt := range tests {
		if got := Categorize(tt.label); got != tt.want {
			t.Errorf("Categorize(%q) = %v; want %v", tt.label.Text, got, tt.want)
		}
	}
}

// The right arrow alone is navigation; with a layer name behind it, it is a
// layer transition. Ordering of the category checks matters here.
func TestCategorizeArrowVsLayer(t *testing.T) {
	if got := Categorize(Label{Text: "→"}); got != CatNavigation {
		t.Errorf("bare arrow categorized as %v; want navigation", got)
	}
	if got := Categorize(Label{Text: "→NUM"}); got != CatLayer {
		t.Errorf("→NUM categorized as %v; want layer", got)
	}
}
