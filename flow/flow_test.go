package flow_test

import (
	"bytes"
	"strings"
	"testing"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/reader"

	"github.com/voltserv/reportengine/flow"
	"github.com/voltserv/reportengine/theme"
)

func testTheme() *theme.Snapshot {
	return theme.FromSettings(nil)
}

func TestRenderBasicStream(t *testing.T) {
	doc := &flow.Document{
		Title: "Test Report",
		Elements: []flow.Element{
			flow.Banner{Text: "Section A - Document Details"},
			flow.Paragraph{Text: "Some body prose that wraps across the content width of the page."},
			flow.Table{
				Widths: []float64{20, 0, 40},
				Header: []string{"S.No", "Description", "Value"},
				Rows: [][]string{
					{"1", "Ordinary row", "OK"},
					{"2", strings.Repeat("unbreakabletoken", 6), "wrapped"},
				},
			},
			flow.Spacer{H: 6},
			flow.Note{Text: "No statutory documents have been attached.", Centered: true},
		},
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, testTheme(), doc); err != nil {
		t.Fatalf("render: %v", err)
	}

	out, err := reader.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if out.NumPages() < 1 {
		t.Errorf("expected at least 1 page, got %d", out.NumPages())
	}
	t.Logf("stream PDF: %d pages, %d bytes", out.NumPages(), buf.Len())
}

func TestRenderPageBreaksStartFreshPages(t *testing.T) {
	doc := &flow.Document{
		Elements: []flow.Element{
			flow.Banner{Text: "One"},
			flow.PageBreak{},
			flow.Banner{Text: "Two"},
			flow.PageBreak{},
			flow.Banner{Text: "Three"},
		},
	}
	var buf bytes.Buffer
	if err := flow.Render(&buf, testTheme(), doc); err != nil {
		t.Fatalf("render: %v", err)
	}
	out, err := reader.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if out.NumPages() != 3 {
		t.Errorf("expected 3 pages, got %d", out.NumPages())
	}
}

func TestRenderWithCoverAddsPage(t *testing.T) {
	coverPage := 0
	doc := &flow.Document{
		Cover: func(pdf *gofpdf.Fpdf) {
			coverPage = pdf.PageNo()
			pdf.SetFont("Helvetica", "B", 30)
			pdf.Text(40, 100, "COVER")
		},
		Elements: []flow.Element{
			flow.Banner{Text: "Body"},
		},
	}
	var buf bytes.Buffer
	if err := flow.Render(&buf, testTheme(), doc); err != nil {
		t.Fatalf("render: %v", err)
	}
	if coverPage != 1 {
		t.Errorf("cover drawn on page %d, want 1", coverPage)
	}
	out, err := reader.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if out.NumPages() != 2 {
		t.Errorf("expected cover + body = 2 pages, got %d", out.NumPages())
	}
}
