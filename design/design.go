// Package design draws the ornamental cover-page artwork. A small fixed set
// of designs is keyed by id; the accent color comes from the theme while the
// dark-blue baseline is fixed.
package design

import (
	gofpdf "github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine/theme"
)

// ID is the tagged design selector. A switch routes each id to its painter;
// there are no string lookups in the draw path.
type ID int

const (
	Design1 ID = iota + 1 // corner wedges with a baseline strip
	Design2               // top and bottom gradient bands
	Design3               // diagonal ribbon
	Design4               // circular motif, top right
	Design5               // left side panel
)

// Parse maps a settings value ("design_1"..."design_5") to an ID.
// Unknown values fall back to Design1.
func Parse(s string) ID {
	switch s {
	case "design_2":
		return Design2
	case "design_3":
		return Design3
	case "design_4":
		return Design4
	case "design_5":
		return Design5
	default:
		return Design1
	}
}

// Paint draws the selected design across the full page. Fill, draw, line
// width, and alpha state are restored before returning so the call leaves
// no mark on subsequent drawing.
func Paint(pdf *gofpdf.Fpdf, pageW, pageH float64, id ID, accent theme.RGB) {
	if pdf.Err() {
		return
	}
	defer func() {
		pdf.SetAlpha(1, "Normal")
		pdf.SetLineWidth(0.2)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetFillColor(255, 255, 255)
	}()

	switch id {
	case Design2:
		paintBands(pdf, pageW, pageH, accent)
	case Design3:
		paintRibbon(pdf, pageW, pageH, accent)
	case Design4:
		paintCircles(pdf, pageW, pageH, accent)
	case Design5:
		paintSidePanel(pdf, pageW, pageH, accent)
	default:
		paintWedges(pdf, pageW, pageH, accent)
	}
}

func fill(pdf *gofpdf.Fpdf, c theme.RGB) {
	pdf.SetFillColor(c.R, c.G, c.B)
}

// paintWedges: accent wedge in the top-left corner, dark wedge bottom-right,
// and a thin accent strip across the lower fifth.
func paintWedges(pdf *gofpdf.Fpdf, w, h float64, accent theme.RGB) {
	fill(pdf, accent)
	pdf.Polygon([]gofpdf.PointType{
		{X: 0, Y: 0}, {X: w * 0.42, Y: 0}, {X: 0, Y: h * 0.18},
	}, "F")

	fill(pdf, theme.DarkBlue)
	pdf.Polygon([]gofpdf.PointType{
		{X: w, Y: h}, {X: w * 0.58, Y: h}, {X: w, Y: h * 0.82},
	}, "F")

	pdf.SetAlpha(0.85, "Normal")
	fill(pdf, accent)
	pdf.Rect(0, h*0.8, w, 2.4, "F")
}

// paintBands: solid dark band at the top, accent gradient band at the bottom.
func paintBands(pdf *gofpdf.Fpdf, w, h float64, accent theme.RGB) {
	fill(pdf, theme.DarkBlue)
	pdf.Rect(0, 0, w, h*0.12, "F")

	fill(pdf, accent)
	pdf.Rect(0, h*0.12, w, 1.6, "F")

	dark := accent.Shade(0.45)
	pdf.LinearGradient(0, h*0.88, w, h*0.12,
		accent.R, accent.G, accent.B, dark.R, dark.G, dark.B,
		0, 0, 1, 0)
}

// paintRibbon: a wide diagonal ribbon from the lower left to the upper right
// with a thinner dark companion stripe.
func paintRibbon(pdf *gofpdf.Fpdf, w, h float64, accent theme.RGB) {
	pdf.SetAlpha(0.92, "Normal")
	fill(pdf, accent)
	pdf.Polygon([]gofpdf.PointType{
		{X: 0, Y: h * 0.78}, {X: w, Y: h * 0.30},
		{X: w, Y: h * 0.42}, {X: 0, Y: h * 0.90},
	}, "F")

	pdf.SetAlpha(1, "Normal")
	fill(pdf, theme.DarkBlue)
	pdf.Polygon([]gofpdf.PointType{
		{X: 0, Y: h * 0.92}, {X: w, Y: h * 0.44},
		{X: w, Y: h * 0.47}, {X: 0, Y: h * 0.95},
	}, "F")
}

// paintCircles: concentric circles bleeding off the top-right corner and a
// small anchor dot near the bottom-left.
func paintCircles(pdf *gofpdf.Fpdf, w, h float64, accent theme.RGB) {
	cx, cy := w*0.92, h*0.08
	pdf.SetAlpha(0.18, "Normal")
	fill(pdf, accent)
	pdf.Circle(cx, cy, w*0.38, "F")

	pdf.SetAlpha(0.35, "Normal")
	pdf.Circle(cx, cy, w*0.26, "F")

	pdf.SetAlpha(1, "Normal")
	fill(pdf, theme.DarkBlue)
	pdf.Circle(cx, cy, w*0.14, "F")

	fill(pdf, accent)
	pdf.Circle(w*0.08, h*0.9, w*0.05, "F")
}

// paintSidePanel: dark panel down the left edge with an accent rule and a
// gradient fade into the page.
func paintSidePanel(pdf *gofpdf.Fpdf, w, h float64, accent theme.RGB) {
	fill(pdf, theme.DarkBlue)
	pdf.Rect(0, 0, w*0.16, h, "F")

	fill(pdf, accent)
	pdf.Rect(w*0.16, 0, 2.2, h, "F")

	light := accent.Tint(0.85)
	pdf.LinearGradient(w*0.16+2.2, 0, w*0.1, h,
		light.R, light.G, light.B, 255, 255, 255,
		0, 0, 1, 0)
}
