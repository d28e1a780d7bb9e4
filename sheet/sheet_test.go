package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/zmkutil/layersheet/keycode"
	"github.com/zmkutil/layersheet/layout"
)

func testRecord(name string) layout.LayerRecord {
	label := func(s string) keycode.Label { return keycode.Label{Text: s} }
	rec := layout.LayerRecord{
		Name:       name,
		AccessText: "hold TAB (left inner)",
		Activation: layout.ActivationInner,
		LeftThumbs: layout.ThumbGroup{
			Outer: label("SPACE"), Inner: label("TAB"), Combined: label("ESC"),
		},
		RightThumbs: layout.ThumbGroup{
			Outer: label("DEL"), Inner: label("BSPC"), Combined: label("RET"),
		},
		AccessSlots: []layout.ThumbSlot{{Hand: layout.Left, Role: layout.RoleInner}},
	}
	for row := 0; row < layout.HandRows; row++ {
		for col := 0; col < layout.HandCols; col++ {
			rec.Left[row][col] = label("A")
			rec.Right[row][col] = label("B")
		}
	}
	return rec
}

func TestTruncateIdempotent(t *testing.T) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont(fontFamily, "B", 8)
	long := "Access: hold TAB (left inner) / hold SPACE (left outer) / hold RET (right combined)"
	const max = 60.0
	once := truncate(pdf, long, max)
	if once == long {
		t.Fatal("expected the long string to be truncated")
	}
	if !strings.HasSuffix(once, ellipsis) {
		t.Errorf("truncated string %q lacks ellipsis", once)
	}
	if pdf.GetStringWidth(once) > max {
		t.Errorf("truncated string %q still exceeds %v", once, max)
	}
	twice := truncate(pdf, once, max)
	if twice != once {
		t.Errorf("truncation not idempotent: %q != %q", twice, once)
	}
}

func TestTruncateShortStringsUntouched(t *testing.T) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont(fontFamily, "B", 8)
	if got := truncate(pdf, "NAV", 100); got != "NAV" {
		t.Errorf("truncate(NAV) = %q", got)
	}
}

// The legend is derived from the reference layer's actual thumb labels, not
// from hardcoded prose.
func TestLegendFromReferenceLayer(t *testing.T) {
	rec := testRecord("TAP")
	legend := Legend(&rec)
	if !strings.Contains(legend, "SPACE+TAB = ESC") {
		t.Errorf("legend %q should describe the left combined key", legend)
	}
	if !strings.Contains(legend, "BSPC+DEL = RET") {
		t.Errorf("legend %q should describe the right combined key", legend)
	}
}

func TestLegendWithoutReferenceLayer(t *testing.T) {
	legend := Legend(nil)
	if !strings.Contains(legend, "outer+inner") {
		t.Errorf("fallback legend %q should describe roles", legend)
	}
}

func TestRenderProducesDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layersheet.sheet")
	defer teardown()
	//
	pages := layout.Paginate([]layout.LayerRecord{testRecord("TAP"), testRecord("NAV")}, layout.DefaultCapacity)
	doc, err := New(DefaultConfig()).Render(pages, Legend(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Error("rendered document does not start with a PDF header")
	}
	if len(doc) < 1000 {
		t.Errorf("rendered document suspiciously small: %d bytes", len(doc))
	}
}

func TestRenderEmptyPages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "layersheet.sheet")
	defer teardown()
	//
	doc, err := New(DefaultConfig()).Render(nil, Legend(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Error("even an empty document must be a valid PDF")
	}
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#FFFFFF", 255, 255, 255},
		{"#000000", 0, 0, 0},
		{"#DDA0DD", 221, 160, 221},
		{"0066CC", 0, 102, 204},
		{"garbage", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := hexRGB(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hexRGB(%q) = %d,%d,%d; want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
