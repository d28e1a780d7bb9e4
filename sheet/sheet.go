/*
Package sheet renders reconstructed layer records into a paginated PDF
document.

The whole document is composed in memory and only handed to the caller once
every page drew successfully, so a late drawing failure can never leave a
truncated file behind. Drawing uses the PDF core fonts, whose WinAnsi
encoding has no arrow glyphs; arrow runes in labels are mapped to ASCII
equivalents before drawing.
*/
package sheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/npillmayer/schuko/tracing"
	"github.com/zmkutil/layersheet/keycode"
	"github.com/zmkutil/layersheet/layout"
)

// tracer writes to trace with key 'layersheet.sheet'
func tracer() tracing.Trace {
	return tracing.Select("layersheet.sheet")
}

const fontFamily = "Helvetica"

// ellipsis terminates truncated strings.
const ellipsis = "..."

// arrowReplacer maps runes outside WinAnsi to drawable equivalents.
var arrowReplacer = strings.NewReplacer("→", "->", "←", "<-", "↑", "^", "↓", "v")

// Legend derives the header legend line from the reference layer's actual
// thumb-role labels, so the wording stays accurate when the layout changes.
// With no reference layer available it falls back to role names.
func Legend(ref *layout.LayerRecord) string {
	if ref == nil {
		return "Combined thumb (dashed) = outer+inner pressed together | highlighted key = layer access"
	}
	l, r := ref.LeftThumbs, ref.RightThumbs
	return fmt.Sprintf("Thumbs: %s+%s = %s (left), %s+%s = %s (right) pressed together | highlighted key = layer access",
		l.Outer, l.Inner, l.Combined, r.Inner, r.Outer, r.Combined)
}

// Renderer draws pages of layer records. It is cheap to create and carries
// no state between Render calls.
type Renderer struct {
	cfg Config
}

// New returns a renderer for the given configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render composes all pages into a complete PDF document and returns its
// bytes. Any drawing error is fatal to the whole document.
func (r *Renderer) Render(pages []layout.Page, legend string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(r.cfg.Title, true)
	for _, page := range pages {
		r.drawPage(pdf, page, legend)
	}
	if pdf.Err() {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	tracer().Infof("rendered %d pages, %d bytes", len(pages), buf.Len())
	return buf.Bytes(), nil
}

func (r *Renderer) drawPage(pdf *fpdf.Fpdf, page layout.Page, legend string) {
	cfg := r.cfg
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	headBaseline := cfg.MarginTop + cfg.TitleSize
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "B", cfg.TitleSize)
	pdf.Text(cfg.MarginLeft, headBaseline, drawable(cfg.Title))

	pdf.SetFont(fontFamily, "", cfg.PageNumSize)
	pageNum := fmt.Sprintf("page %d of %d", page.Index, page.Total)
	pdf.Text(pageWidth-cfg.MarginRight-pdf.GetStringWidth(pageNum), headBaseline, pageNum)

	pdf.SetFont(fontFamily, "", cfg.LegendSize)
	pdf.Text(cfg.MarginLeft, headBaseline+cfg.TitleToLegend, drawable(legend))

	top := headBaseline + cfg.TitleToLegend + cfg.LegendToKeys
	for i, rec := range page.Layers {
		r.drawLayer(pdf, rec, top+float64(i)*cfg.SectionHeight, pageWidth)
	}
}

// drawLayer draws one layer block: name, access annotation, two hand grids
// and six thumb keys.
func (r *Renderer) drawLayer(pdf *fpdf.Fpdf, rec layout.LayerRecord, y, pageWidth float64) {
	cfg := r.cfg
	handWidth := float64(layout.HandCols)*cfg.KeyWidth + float64(layout.HandCols-1)*cfg.KeySpacing
	totalWidth := 2*handWidth + cfg.HandGap
	leftX := (pageWidth - totalWidth) / 2
	rightX := leftX + handWidth + cfg.HandGap
	baseline := y + cfg.LayerNameSize

	// Layer name above the left grid, truncated so it never crosses into
	// the inter-hand gap.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "B", cfg.LayerNameSize)
	pdf.Text(leftX, baseline, truncate(pdf, drawable(rec.Name), handWidth))

	// Access annotation right-aligned above the right grid.
	pdf.SetFont(fontFamily, "B", cfg.AccessSize)
	ar, ag, ab := hexRGB(cfg.AccessText)
	pdf.SetTextColor(ar, ag, ab)
	access := truncate(pdf, drawable("Access: "+rec.AccessText), handWidth)
	pdf.Text(rightX+handWidth-pdf.GetStringWidth(access), baseline, access)

	firstRowY := baseline + cfg.TitleToKeys
	rowStride := cfg.KeyHeight + cfg.KeySpacing
	colStride := cfg.KeyWidth + cfg.KeySpacing

	for row := 0; row < layout.HandRows; row++ {
		for col := 0; col < layout.HandCols; col++ {
			cellY := firstRowY + float64(row)*rowStride
			r.drawKey(pdf, leftX+float64(col)*colStride, cellY, rec.Left[row][col], keyStyle{})
			r.drawKey(pdf, rightX+float64(col)*colStride, cellY, rec.Right[row][col], keyStyle{})
		}
	}

	physicalY := firstRowY + float64(layout.HandRows)*rowStride + cfg.ThumbSpacing
	combinedY := physicalY + cfg.KeyHeight + cfg.ThumbSpacing

	// Physical thumb pairs are interior-aligned; each combined key is
	// centered beneath its pair.
	r.drawThumb(pdf, rec, layout.Left, layout.RoleOuter, leftX+3*colStride, physicalY)
	r.drawThumb(pdf, rec, layout.Left, layout.RoleInner, leftX+4*colStride, physicalY)
	r.drawThumb(pdf, rec, layout.Left, layout.RoleCombined, leftX+3*colStride+colStride/2, combinedY)
	r.drawThumb(pdf, rec, layout.Right, layout.RoleInner, rightX, physicalY)
	r.drawThumb(pdf, rec, layout.Right, layout.RoleOuter, rightX+colStride, physicalY)
	r.drawThumb(pdf, rec, layout.Right, layout.RoleCombined, rightX+colStride/2, combinedY)
}

func (r *Renderer) drawThumb(pdf *fpdf.Fpdf, rec layout.LayerRecord, hand layout.Hand, role layout.Role, x, y float64) {
	group := rec.LeftThumbs
	if hand == layout.Right {
		group = rec.RightThumbs
	}
	st := keyStyle{
		combined: role == layout.RoleCombined,
		inactive: !rec.Activation.Matches(role),
	}
	for _, slot := range rec.AccessSlots {
		if slot.Hand == hand && slot.Role == role {
			st.access = true
			break
		}
	}
	r.drawKey(pdf, x, y, group.ByRole(role), st)
}

type keyStyle struct {
	access   bool // this key enters the current layer
	inactive bool // role does not match the layer's activation pattern
	combined bool // virtual simultaneous-press key, dashed border
}

// drawKey draws one key cell. Color precedence: the access key color beats
// category coloring, inactive styling beats both.
func (r *Renderer) drawKey(pdf *fpdf.Fpdf, x, y float64, label keycode.Label, st keyStyle) {
	if label.IsAbsent() {
		return
	}
	cfg := r.cfg

	bg := cfg.CategoryColors[keycode.Categorize(label)]
	textColor := "#000000"
	if label.IsEmpty() {
		textColor = cfg.EmptyText
	}
	border := cfg.KeyBorder
	switch {
	case st.access && !st.inactive:
		bg, textColor = cfg.AccessKeyBG, "#000000"
	case st.inactive:
		bg, textColor = cfg.InactiveBG, cfg.InactiveText
		border = cfg.InactiveBorder
	}

	fr, fg, fb := hexRGB(bg)
	pdf.SetFillColor(fr, fg, fb)
	br, bgc, bb := hexRGB(border)
	pdf.SetDrawColor(br, bgc, bb)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, cfg.KeyWidth, cfg.KeyHeight, "FD")

	// The combined key is virtual, the dashed marker distinguishes it from
	// physical keys in every state.
	if st.combined {
		cr, cg, cb := hexRGB(cfg.CombinedBorder)
		pdf.SetDrawColor(cr, cg, cb)
		pdf.SetLineWidth(1)
		pdf.SetDashPattern([]float64{2, 2}, 0)
		pdf.Rect(x, y, cfg.KeyWidth, cfg.KeyHeight, "D")
		pdf.SetDashPattern([]float64{}, 0)
	}

	pdf.SetFont(fontFamily, "B", cfg.KeySize)
	tr, tg, tb := hexRGB(textColor)
	pdf.SetTextColor(tr, tg, tb)
	s := truncate(pdf, drawable(label.String()), cfg.KeyWidth-2)
	pdf.Text(x+(cfg.KeyWidth-pdf.GetStringWidth(s))/2, y+(cfg.KeyHeight+cfg.KeySize*0.7)/2, s)
}

// drawable maps label text onto the WinAnsi glyph set.
func drawable(s string) string {
	return arrowReplacer.Replace(s)
}

// truncate shortens s with a trailing ellipsis until it fits maxWidth in the
// current font. Strings that already fit, including previously truncated
// ones, pass through unchanged.
func truncate(pdf *fpdf.Fpdf, s string, maxWidth float64) string {
	if pdf.GetStringWidth(s) <= maxWidth {
		return s
	}
	runes := []rune(strings.TrimSuffix(s, ellipsis))
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		t := string(runes) + ellipsis
		if pdf.GetStringWidth(t) <= maxWidth {
			return t
		}
	}
	return ellipsis
}
