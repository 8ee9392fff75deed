package compose

import (
	"bytes"
	"fmt"
	"io"
	"os"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"
	"github.com/lvillar/gofpdf/reader"
)

// a4 page size in points, used when a source page carries no MediaBox.
const (
	a4WidthPt  = 595.28
	a4HeightPt = 841.89
)

// mergeParts concatenates rendered PDF documents into one file written to
// w. Parts keep their own page sizes and orientations.
func mergeParts(w io.Writer, parts ...[]byte) error {
	if len(parts) == 0 {
		return fmt.Errorf("merge: no parts")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, part := range parts {
		if err := appendPart(pdf, part); err != nil {
			return fmt.Errorf("merge part %d: %w", i+1, err)
		}
	}
	return pdf.Output(w)
}

// appendPart imports every page of one rendered document into the target.
func appendPart(pdf *gofpdf.Fpdf, data []byte) error {
	doc, err := reader.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse part: %w", err)
	}
	pages := doc.NumPages()
	if pages == 0 {
		return nil
	}

	imp := gofpdi.NewImporter()
	var rs io.ReadSeeker = bytes.NewReader(data)
	for i := 1; i <= pages; i++ {
		tpl := imp.ImportPageFromStream(pdf, &rs, i, "/MediaBox")

		w, h := a4WidthPt, a4HeightPt
		if dims, ok := imp.GetPageSizes()[i]; ok {
			if mb, ok := dims["/MediaBox"]; ok && mb["w"] > 0 && mb["h"] > 0 {
				w, h = mb["w"], mb["h"]
			}
		}

		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tpl, 0, 0, w, h)
	}
	return pdf.Error()
}

// readPDFFile loads a PDF from disk and verifies it parses, so a corrupt
// upload fails before it poisons the merge.
func readPDFFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := reader.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return data, nil
}
