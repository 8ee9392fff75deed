// Package flow renders an ordered stream of body elements into a PDF
// document. Section builders emit elements (banners, paragraphs, wrapped
// tables, charts, separators); the renderer walks the stream with the page
// decorator installed as header/footer callbacks.
package flow

import (
	"fmt"
	"strings"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/table"

	"github.com/voltserv/reportengine/style"
	"github.com/voltserv/reportengine/theme"
)

// Context carries the per-build drawing state every element sees. It is the
// flat build-context record that replaces any module-global settings.
type Context struct {
	PDF    *gofpdf.Fpdf
	Styles *style.Set
	Theme  *theme.Snapshot
}

func (c *Context) contentWidth() float64 {
	pageW, _ := c.PDF.GetPageSize()
	lm, _, rm, _ := c.PDF.GetMargins()
	return pageW - lm - rm
}

// Element is one flowable block of the body stream.
type Element interface {
	draw(c *Context)
}

// Banner is a full-width colored bar carrying an uppercase section header
// in white.
type Banner struct {
	Text string
}

func (b Banner) draw(c *Context) {
	pdf := c.PDF
	style.Apply(pdf, c.Styles.SectionHeader)
	pdf.SetFillColor(c.Theme.Primary.R, c.Theme.Primary.G, c.Theme.Primary.B)
	pdf.CellFormat(c.contentWidth(), 8, "  "+strings.ToUpper(b.Text), "", 1, "L", true, 0, "")
	pdf.Ln(3)
}

// Paragraph is wrapped prose. A nil style renders with the body style.
type Paragraph struct {
	Text  string
	Style *style.Style
}

func (p Paragraph) draw(c *Context) {
	st := c.Styles.Body
	if p.Style != nil {
		st = *p.Style
	}
	style.Apply(c.PDF, st)
	c.PDF.MultiCell(c.contentWidth(), st.LineHeight(), p.Text, "", st.Align, false)
	c.PDF.Ln(st.LineHeight() * 0.6)
}

// Note is a small italic side note, optionally centered.
type Note struct {
	Text     string
	Centered bool
}

func (n Note) draw(c *Context) {
	st := c.Styles.SmallNote
	if n.Centered {
		st.Align = "C"
	}
	style.Apply(c.PDF, st)
	c.PDF.MultiCell(c.contentWidth(), st.LineHeight()+1, n.Text, "", st.Align, false)
	c.PDF.Ln(2)
}

// Spacer advances the cursor by H millimeters.
type Spacer struct {
	H float64
}

func (s Spacer) draw(c *Context) { c.PDF.Ln(s.H) }

// PageBreak starts a fresh page.
type PageBreak struct{}

func (PageBreak) draw(c *Context) { c.PDF.AddPage() }

// Table is structured tabular data with wrapping cells. Widths of zero
// auto-fill the remaining content width. The header row is filled with the
// theme primary color; long tokens in cells are force-broken so rows never
// overflow.
type Table struct {
	Widths []float64
	Aligns []string // per column: "L", "C", "R"; empty means "L"
	Header []string
	Rows   [][]string

	// StyleCell, when set, adjusts individual body cells after creation
	// (severity coloring and similar).
	StyleCell func(row, col int, cell *table.Cell)
}

func (t Table) draw(c *Context) {
	pdf := c.PDF
	cellStyle := c.Styles.Cell
	pdf.SetFont(cellStyle.Family, cellStyle.Face, cellStyle.Size)

	tb := table.New(pdf)
	if len(t.Widths) > 0 {
		cols := make([]table.ColumnDef, len(t.Widths))
		for i, w := range t.Widths {
			cols[i] = table.ColumnDef{Width: w}
			if i < len(t.Aligns) && t.Aligns[i] != "" {
				cols[i].Align = t.Aligns[i]
			}
		}
		tb.SetColumns(cols...)
	}
	tb.SetStyle(table.TableStyle{
		CellPadding: table.UniformPadding(1.5),
		Border:      &table.BorderStyle{Width: 0.2, Color: table.RGBColor{R: 120, G: 120, B: 120}},
		CellFont:    &table.FontSpec{Family: cellStyle.Family, Style: cellStyle.Face, Size: cellStyle.Size},
		HeaderStyle: &table.CellStyle{
			FillColor: &table.RGBColor{R: c.Theme.Primary.R, G: c.Theme.Primary.G, B: c.Theme.Primary.B},
			TextColor: &table.RGBColor{R: 255, G: 255, B: 255},
			Font:      &table.FontSpec{Family: cellStyle.Family, Style: "B", Size: cellStyle.Size},
		},
	})

	if len(t.Header) > 0 {
		hr := tb.AddHeaderRow()
		for _, h := range t.Header {
			hr.AddCell(h)
		}
	}
	for ri, row := range t.Rows {
		r := tb.AddRow()
		for ci, cell := range row {
			tc := r.AddCell(style.CellText(cell))
			if ci < len(t.Aligns) && t.Aligns[ci] != "" {
				tc.SetAlign(t.Aligns[ci])
			}
			if t.StyleCell != nil {
				t.StyleCell(ri, ci, tc)
			}
		}
	}

	if err := tb.Render(); err != nil {
		pdf.SetError(fmt.Errorf("flow: table: %w", err))
		return
	}
	pdf.Ln(4)
}

// BarChart is a vertical bar chart normalized to percentages of the total.
type BarChart struct {
	Labels []string
	Values []int
	Colors []theme.RGB
	Height float64 // plot height in mm; default 45
}

func (b BarChart) draw(c *Context) {
	pdf := c.PDF
	if len(b.Values) == 0 {
		return
	}
	total := 0
	for _, v := range b.Values {
		total += v
	}
	if total == 0 {
		return
	}
	height := b.Height
	if height <= 0 {
		height = 45
	}

	lm, _, _, _ := pdf.GetMargins()
	width := c.contentWidth()
	top := pdf.GetY() + 4
	base := top + height
	slot := width / float64(len(b.Values))
	barW := slot * 0.45

	// baseline
	pdf.SetDrawColor(theme.Gray.R, theme.Gray.G, theme.Gray.B)
	pdf.SetLineWidth(0.3)
	pdf.Line(lm, base, lm+width, base)

	style.Apply(pdf, c.Styles.CellCenter)
	for i, v := range b.Values {
		pct := float64(v) / float64(total) * 100
		barH := height * pct / 100
		x := lm + slot*float64(i) + (slot-barW)/2

		col := c.Theme.Primary
		if i < len(b.Colors) {
			col = b.Colors[i]
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(x, base-barH, barW, barH, "F")

		pdf.SetXY(lm+slot*float64(i), base-barH-5)
		pdf.CellFormat(slot, 4, fmt.Sprintf("%.0f%%", pct), "", 0, "C", false, 0, "")

		pdf.SetXY(lm+slot*float64(i), base+1)
		label := ""
		if i < len(b.Labels) {
			label = b.Labels[i]
		}
		pdf.CellFormat(slot, 4, label, "", 0, "C", false, 0, "")
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetY(base + 8)
}

// AnnexTitle is a separator title page body: a deep spacer, the annexure
// heading, the category title, and the attachment count.
type AnnexTitle struct {
	Number   int
	Title    string
	Subtitle string
}

func (a AnnexTitle) draw(c *Context) {
	pdf := c.PDF
	pdf.Ln(70)

	heading := c.Styles.CoverTitle
	heading.Size = 26
	style.Apply(pdf, heading)
	pdf.CellFormat(c.contentWidth(), 14, fmt.Sprintf("ANNEXURE - %d", a.Number), "", 1, "C", false, 0, "")

	sub := c.Styles.CoverSubtitle
	style.Apply(pdf, sub)
	pdf.CellFormat(c.contentWidth(), 10, strings.ToUpper(a.Title), "", 1, "C", false, 0, "")

	if a.Subtitle != "" {
		pdf.Ln(4)
		style.Apply(pdf, c.Styles.SmallNote)
		pdf.CellFormat(c.contentWidth(), 6, a.Subtitle, "", 1, "C", false, 0, "")
	}
}
