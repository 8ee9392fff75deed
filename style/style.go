// Package style provides the fixed paragraph-style set shared by every
// report engine: cover headings, section banners, body text, and table
// cells with word-wrap.
package style

import (
	gofpdf "github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine/theme"
)

// FontFamily is the only family the reports use.
const FontFamily = "Helvetica"

// Style is one named text style.
type Style struct {
	Family string
	Face   string // "", "B", "I", "BI"
	Size   float64
	Color  theme.RGB
	Align  string // "L", "C", "R", "J"
}

// Set is the reusable style collection for one build. Primary-colored
// styles are resolved against the theme snapshot once.
type Set struct {
	CoverTitle    Style // large cover heading
	CoverSubtitle Style // accent subtitle under the title
	SectionHeader Style // white on dark banner bar
	Subsection    Style
	Body          Style // justified prose
	SmallNote     Style // italic gray side notes
	Cell          Style // left-aligned wrapping table cell
	CellCenter    Style
	CellBold      Style
}

// NewSet builds the style set for a theme snapshot.
func NewSet(th *theme.Snapshot) *Set {
	return &Set{
		CoverTitle:    Style{Family: FontFamily, Face: "B", Size: 30, Color: theme.DarkBlue, Align: "C"},
		CoverSubtitle: Style{Family: FontFamily, Face: "B", Size: 14, Color: th.Primary, Align: "C"},
		SectionHeader: Style{Family: FontFamily, Face: "B", Size: 11, Color: theme.White, Align: "L"},
		Subsection:    Style{Family: FontFamily, Face: "B", Size: 10, Color: theme.DarkBlue, Align: "L"},
		Body:          Style{Family: FontFamily, Size: 10, Color: theme.Black, Align: "J"},
		SmallNote:     Style{Family: FontFamily, Face: "I", Size: 8, Color: theme.Gray, Align: "L"},
		Cell:          Style{Family: FontFamily, Size: 9, Color: theme.Black, Align: "L"},
		CellCenter:    Style{Family: FontFamily, Size: 9, Color: theme.Black, Align: "C"},
		CellBold:      Style{Family: FontFamily, Face: "B", Size: 9, Color: theme.Black, Align: "L"},
	}
}

// Apply sets the font and text color for a style on the document.
func Apply(pdf *gofpdf.Fpdf, s Style) {
	pdf.SetFont(s.Family, s.Face, s.Size)
	pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
}

// LineHeight returns a comfortable line height for the style in mm.
func (s Style) LineHeight() float64 {
	return s.Size * 0.5
}
