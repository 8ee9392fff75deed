package design_test

import (
	"bytes"
	"testing"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine/design"
	"github.com/voltserv/reportengine/theme"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want design.ID
	}{
		{"design_1", design.Design1},
		{"design_2", design.Design2},
		{"design_3", design.Design3},
		{"design_4", design.Design4},
		{"design_5", design.Design5},
		{"", design.Design1},
		{"design_99", design.Design1},
	}
	for _, c := range cases {
		if got := design.Parse(c.in); got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPaintAllDesigns(t *testing.T) {
	teal := theme.RGB{R: 13, G: 148, B: 136}
	for id := design.Design1; id <= design.Design5; id++ {
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		w, h := pdf.GetPageSize()

		design.Paint(pdf, w, h, id, teal)
		if pdf.Err() {
			t.Fatalf("design %v: %v", id, pdf.Error())
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			t.Fatalf("design %v output: %v", id, err)
		}
		if buf.Len() == 0 {
			t.Errorf("design %v produced empty PDF", id)
		}
		t.Logf("design %v: %d bytes", id, buf.Len())
	}
}

func TestPaintRestoresState(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	w, h := pdf.GetPageSize()

	design.Paint(pdf, w, h, design.Design3, theme.RGB{R: 200, G: 30, B: 30})

	// Text drawn after the painter must come out in normal black on white;
	// a leaked alpha or fill would corrupt the cover text.
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 40, "after paint")
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
}
