package decor

import (
	"bytes"
	"fmt"

	"github.com/boombuler/barcode/qr"
	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/barcode"

	"github.com/voltserv/reportengine/design"
	"github.com/voltserv/reportengine/style"
	"github.com/voltserv/reportengine/theme"
)

// BackCover renders the standalone closing page as its own single-page PDF.
// It carries the decorative design and the theme footer but no header; a QR
// code linking the company website sits above the footer when a website is
// configured.
func (d *Decorator) BackCover() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	design.Paint(pdf, pageW, pageH, d.designID, d.accent)

	if d.Theme.HasLogo() {
		pdf.ImageOptions(d.Theme.LogoPath, (pageW-28)/2, 58, 28, 0, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetXY(0, 102)
	pdf.SetFont(style.FontFamily, "B", 24)
	pdf.SetTextColor(theme.DarkBlue.R, theme.DarkBlue.G, theme.DarkBlue.B)
	pdf.CellFormat(pageW, 12, "THANK YOU", "", 1, "C", false, 0, "")

	pdf.SetFont(style.FontFamily, "B", 13)
	pdf.SetTextColor(d.accent.R, d.accent.G, d.accent.B)
	pdf.CellFormat(pageW, 8, d.Theme.CompanyName, "", 1, "C", false, 0, "")

	pdf.SetFont(style.FontFamily, "", 9)
	pdf.SetTextColor(theme.Gray.R, theme.Gray.G, theme.Gray.B)
	for _, line := range d.Theme.AddressLines {
		pdf.CellFormat(pageW, 5, line, "", 1, "C", false, 0, "")
	}
	var contact string
	if d.Theme.Phone != "" {
		contact = d.Theme.Phone
	}
	if d.Theme.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += d.Theme.Email
	}
	if contact != "" {
		pdf.CellFormat(pageW, 5, contact, "", 1, "C", false, 0, "")
	}
	if d.Theme.Certifications != "" {
		pdf.Ln(2)
		pdf.SetFont(style.FontFamily, "I", 8)
		pdf.CellFormat(pageW, 5, d.Theme.Certifications, "", 1, "C", false, 0, "")
	}

	if d.Theme.Website != "" {
		key := barcode.RegisterQR(pdf, "https://"+d.Theme.Website, qr.M, qr.Unicode)
		qrSize := 24.0
		barcode.Barcode(pdf, key, (pageW-qrSize)/2, pageH-68, qrSize, qrSize, false)

		pdf.SetXY(0, pageH-42)
		pdf.SetFont(style.FontFamily, "", 8)
		pdf.SetTextColor(theme.Gray.R, theme.Gray.G, theme.Gray.B)
		pdf.CellFormat(pageW, 4, d.Theme.Website, "", 1, "C", false, 0, "")
	}

	d.Footer(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("decor: back cover: %w", err)
	}
	return buf.Bytes(), nil
}
