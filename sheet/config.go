package sheet

import (
	"strconv"
	"strings"

	"github.com/zmkutil/layersheet/keycode"
)

// Config collects the geometry, typography and color choices of the rendered
// document. All lengths are in points; the page is US-Letter portrait.
type Config struct {
	Title string

	// Key cell geometry.
	KeyWidth     float64
	KeyHeight    float64
	KeySpacing   float64
	HandGap      float64 // horizontal gap between the two hand grids
	ThumbSpacing float64

	// Per-layer block stride.
	SectionHeight float64

	// Font sizes.
	TitleSize     float64
	LayerNameSize float64
	KeySize       float64
	AccessSize    float64
	LegendSize    float64
	PageNumSize   float64

	// Page chrome offsets.
	MarginTop     float64
	MarginLeft    float64
	MarginRight   float64
	TitleToLegend float64
	LegendToKeys  float64
	TitleToKeys   float64 // layer name baseline to first key row

	// Category fills, as "#RRGGBB". Text on category fills is black except
	// for empty slots.
	CategoryColors map[keycode.Category]string

	// Override and accent colors.
	EmptyText      string // dash text on empty slots
	InactiveBG     string
	InactiveText   string
	AccessKeyBG    string // fill of the key that enters the current layer
	AccessText     string // color of the access annotation line
	CombinedBorder string // dashed border of the virtual combined thumb key
	KeyBorder      string
	InactiveBorder string
}

// DefaultConfig returns the stock letter-portrait layout: four layer blocks
// per page, pastel category palette.
func DefaultConfig() Config {
	return Config{
		Title: "Miryoku Keyboard Layers",

		KeyWidth:     43.2,
		KeyHeight:    24.5,
		KeySpacing:   2.2,
		HandGap:      28.8,
		ThumbSpacing: 2.9,

		SectionHeight: 162,

		TitleSize:     14,
		LayerNameSize: 16,
		KeySize:       9,
		AccessSize:    8,
		LegendSize:    8,
		PageNumSize:   9,

		MarginTop:     25.2,
		MarginLeft:    36,
		MarginRight:   72,
		TitleToLegend: 14.4,
		LegendToKeys:  21.6,
		TitleToKeys:   14,

		CategoryColors: map[keycode.Category]string{
			keycode.CatRegular:        "#FFFFFF",
			keycode.CatModifier:       "#FFB6C1",
			keycode.CatNavigation:     "#90EE90",
			keycode.CatMouseClipboard: "#87CEEB",
			keycode.CatSystem:         "#F0E68C",
			keycode.CatLayer:          "#DDA0DD",
			keycode.CatReset:          "#DDA0DD",
			keycode.CatEmpty:          "#CCCCCC",
		},

		EmptyText:      "#999999",
		InactiveBG:     "#E8E8E8",
		InactiveText:   "#AAAAAA",
		AccessKeyBG:    "#F0E68C",
		AccessText:     "#0066CC",
		CombinedBorder: "#FF0000",
		KeyBorder:      "#000000",
		InactiveBorder: "#CCCCCC",
	}
}

// hexRGB parses a "#RRGGBB" color into its components. Unparsable input
// yields black.
func hexRGB(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF)
}
