package flow

import (
	"fmt"
	"io"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine/style"
	"github.com/voltserv/reportengine/theme"
)

// Page geometry shared by every report document, in millimeters.
const (
	MarginLeft   = 14.0
	MarginTop    = 26.0 // clears the body header
	MarginRight  = 14.0
	MarginBottom = 22.0 // clears the footer
)

// Document describes one renderable report: metadata, the page decorator
// callbacks, an optional cover painter, and the body element stream.
type Document struct {
	Title       string
	Author      string
	Orientation string // "P" (default) or "L"

	// Cover, when set, paints the first page; the body starts on page 2.
	Cover func(pdf *gofpdf.Fpdf)
	// Header and Footer run on every page via the renderer callbacks.
	// The decorator itself decides what to skip on the cover.
	Header func(pdf *gofpdf.Fpdf)
	Footer func(pdf *gofpdf.Fpdf)

	Elements []Element
}

// Render walks the document's element stream into a PDF written to w.
func Render(w io.Writer, th *theme.Snapshot, doc *Document) error {
	orient := doc.Orientation
	if orient == "" {
		orient = "P"
	}
	pdf := gofpdf.New(orient, "mm", "A4", "")
	pdf.SetMargins(MarginLeft, MarginTop, MarginRight)
	pdf.SetAutoPageBreak(true, MarginBottom)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	if doc.Author != "" {
		pdf.SetAuthor(doc.Author, true)
	}

	if doc.Header != nil {
		pdf.SetHeaderFunc(func() { doc.Header(pdf) })
	}
	if doc.Footer != nil {
		pdf.SetFooterFunc(func() { doc.Footer(pdf) })
	}

	ctx := &Context{PDF: pdf, Styles: style.NewSet(th), Theme: th}

	pdf.AddPage()
	if doc.Cover != nil {
		doc.Cover(pdf)
		pdf.AddPage()
	}

	for _, el := range doc.Elements {
		el.draw(ctx)
		if pdf.Err() {
			return fmt.Errorf("flow: rendering %T: %w", el, pdf.Error())
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("flow: output: %w", err)
	}
	return nil
}
