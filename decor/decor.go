// Package decor draws the page furniture of every report: the decorated
// cover page, the per-page header and footer, and the back cover. It knows
// the cover-page layout; body content is the flow package's concern.
package decor

import (
	"strconv"
	"strings"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine/design"
	"github.com/voltserv/reportengine/style"
	"github.com/voltserv/reportengine/theme"
)

// maxCoverValue is the truncation width, in characters, for single-line
// cover info values.
const maxCoverValue = 42

// Field is one labeled row of the cover info box.
type Field struct {
	Label string
	Value string
	Wrap  bool // word-wrap instead of truncating (site locations)
}

// CoverInfo is the text content of a cover page.
type CoverInfo struct {
	TitleLine1 string
	TitleLine2 string
	Subtitle   string
	Fields     []Field
}

// Decorator paints cover, header, and footer for one report build. It is
// constructed once per build from the theme snapshot and carried in the
// build context; it never reads settings itself.
type Decorator struct {
	Theme  *theme.Snapshot
	Styles *style.Set
	Title  string // header title text
	Number string // report number shown in the header

	designID design.ID
	accent   theme.RGB
}

// New builds a decorator for a report type. designKey selects the
// per-report-type decorative design from the theme.
func New(th *theme.Snapshot, designKey, title, number string) *Decorator {
	d := th.ReportDesign(designKey)
	return &Decorator{
		Theme:    th,
		Styles:   style.NewSet(th),
		Title:    title,
		Number:   number,
		designID: design.Parse(d.ID),
		accent:   d.Color,
	}
}

// Accent returns the resolved design accent color.
func (d *Decorator) Accent() theme.RGB { return d.accent }

// Cover paints the full cover page: decorative design, logo, two-line
// title, accent subtitle with a color rule, the rounded info box, and the
// submitted-by block.
func (d *Decorator) Cover(pdf *gofpdf.Fpdf, info CoverInfo) {
	pageW, pageH := pdf.GetPageSize()

	design.Paint(pdf, pageW, pageH, d.designID, d.accent)

	if d.Theme.HasLogo() {
		pdf.ImageOptions(d.Theme.LogoPath, 14, 12, 0, 16, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	style.Apply(pdf, d.Styles.CoverTitle)
	pdf.SetXY(0, 88)
	pdf.CellFormat(pageW, 14, info.TitleLine1, "", 1, "C", false, 0, "")
	if info.TitleLine2 != "" {
		pdf.CellFormat(pageW, 14, info.TitleLine2, "", 1, "C", false, 0, "")
	}

	if info.Subtitle != "" {
		pdf.Ln(4)
		style.Apply(pdf, d.Styles.CoverSubtitle)
		pdf.SetTextColor(d.accent.R, d.accent.G, d.accent.B)
		pdf.CellFormat(pageW, 8, info.Subtitle, "", 1, "C", false, 0, "")

		ruleW := 56.0
		pdf.SetDrawColor(d.accent.R, d.accent.G, d.accent.B)
		pdf.SetLineWidth(0.9)
		y := pdf.GetY() + 1.5
		pdf.Line((pageW-ruleW)/2, y, (pageW+ruleW)/2, y)
		pdf.SetLineWidth(0.2)
	}

	d.coverInfoBox(pdf, pageW, info.Fields)
	d.submittedBy(pdf, pageW, pageH)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
}

// coverInfoBox draws the centered rounded rectangle with labeled rows.
func (d *Decorator) coverInfoBox(pdf *gofpdf.Fpdf, pageW float64, fields []Field) {
	if len(fields) == 0 {
		return
	}
	boxW := 144.0
	boxX := (pageW - boxW) / 2
	boxY := 156.0
	rowH := 9.0
	boxH := float64(len(fields))*rowH + 10

	pdf.SetAlpha(0.08, "Normal")
	pdf.SetFillColor(d.accent.R, d.accent.G, d.accent.B)
	pdf.RoundedRect(boxX, boxY, boxW, boxH, 3, "1234", "F")
	pdf.SetAlpha(1, "Normal")

	pdf.SetDrawColor(d.accent.R, d.accent.G, d.accent.B)
	pdf.SetLineWidth(0.4)
	pdf.RoundedRect(boxX, boxY, boxW, boxH, 3, "1234", "D")
	pdf.SetLineWidth(0.2)

	y := boxY + 5
	labelW := 44.0
	valueW := boxW - labelW - 12
	for _, f := range fields {
		pdf.SetXY(boxX+6, y)
		pdf.SetFont(style.FontFamily, "B", 9)
		pdf.SetTextColor(theme.DarkBlue.R, theme.DarkBlue.G, theme.DarkBlue.B)
		pdf.CellFormat(labelW, rowH, strings.ToUpper(f.Label), "", 0, "L", false, 0, "")

		pdf.SetFont(style.FontFamily, "", 10)
		pdf.SetTextColor(30, 30, 30)
		if f.Wrap {
			lines := pdf.SplitLines([]byte(f.Value), valueW)
			if len(lines) > 2 {
				lines = lines[:2]
			}
			yy := y
			for _, line := range lines {
				pdf.SetXY(boxX+6+labelW, yy)
				pdf.CellFormat(valueW, rowH/2+0.5, string(line), "", 0, "L", false, 0, "")
				yy += rowH / 2
			}
		} else {
			pdf.CellFormat(valueW, rowH, Truncate(f.Value, maxCoverValue), "", 0, "L", false, 0, "")
		}
		y += rowH
	}
}

// submittedBy draws the company block at the bottom right of the cover.
func (d *Decorator) submittedBy(pdf *gofpdf.Fpdf, pageW, pageH float64) {
	x := pageW - 96
	y := pageH - 46

	pdf.SetXY(x, y)
	pdf.SetFont(style.FontFamily, "I", 8)
	pdf.SetTextColor(theme.Gray.R, theme.Gray.G, theme.Gray.B)
	pdf.CellFormat(82, 4, "Submitted By", "", 1, "R", false, 0, "")

	pdf.SetX(x)
	pdf.SetFont(style.FontFamily, "B", 11)
	pdf.SetTextColor(theme.DarkBlue.R, theme.DarkBlue.G, theme.DarkBlue.B)
	pdf.CellFormat(82, 5.5, d.Theme.CompanyName, "", 1, "R", false, 0, "")

	pdf.SetFont(style.FontFamily, "", 8)
	pdf.SetTextColor(theme.Gray.R, theme.Gray.G, theme.Gray.B)
	for _, line := range d.Theme.AddressLines {
		pdf.SetX(x)
		pdf.CellFormat(82, 4, line, "", 1, "R", false, 0, "")
	}
}

// Header draws the body-page header: title left, report number right, and
// an accent rule above the content. Skipped on the cover page and when the
// theme disables headers.
func (d *Decorator) Header(pdf *gofpdf.Fpdf) {
	if pdf.PageNo() <= 1 || !d.Theme.IsHeaderFooterEnabled() {
		return
	}
	pageW, _ := pdf.GetPageSize()

	if d.Theme.HasLogo() {
		pdf.ImageOptions(d.Theme.LogoPath, 14, 7, 0, 9, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetXY(14, 9)
	pdf.SetFont(style.FontFamily, "B", 9)
	pdf.SetTextColor(theme.DarkBlue.R, theme.DarkBlue.G, theme.DarkBlue.B)
	pdf.CellFormat(pageW-28, 5, d.Title, "", 0, "C", false, 0, "")

	pdf.SetXY(pageW-74, 9)
	pdf.SetFont(style.FontFamily, "", 8)
	pdf.SetTextColor(theme.Gray.R, theme.Gray.G, theme.Gray.B)
	pdf.CellFormat(60, 5, d.Number, "", 0, "R", false, 0, "")

	pdf.SetDrawColor(d.accent.R, d.accent.G, d.accent.B)
	pdf.SetLineWidth(0.6)
	pdf.Line(14, 19, pageW-14, 19)
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
}

// Footer draws the page footer: accent rule, company name left, website
// centered, and the page number right. Page numbers display as "Page N"
// with N = physical page - 1, so the cover shows none.
func (d *Decorator) Footer(pdf *gofpdf.Fpdf) {
	if !d.Theme.IsHeaderFooterEnabled() {
		return
	}
	pageW, pageH := pdf.GetPageSize()
	y := pageH - 15

	pdf.SetDrawColor(d.accent.R, d.accent.G, d.accent.B)
	pdf.SetLineWidth(0.5)
	pdf.Line(14, y, pageW-14, y)
	pdf.SetLineWidth(0.2)

	pdf.SetFont(style.FontFamily, "", 7.5)
	pdf.SetTextColor(theme.Gray.R, theme.Gray.G, theme.Gray.B)

	pdf.SetXY(14, y+2)
	pdf.CellFormat(70, 4, d.Theme.CompanyName, "", 0, "L", false, 0, "")

	pdf.SetXY((pageW-70)/2, y+2)
	pdf.CellFormat(70, 4, d.Theme.Website, "", 0, "C", false, 0, "")

	if n := pdf.PageNo(); n > 1 {
		pdf.SetXY(pageW-44, y+2)
		pdf.CellFormat(30, 4, "Page "+strconv.Itoa(n-1), "", 0, "R", false, 0, "")
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
}

// Truncate shortens s to at most n characters, appending an ellipsis when
// anything was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
