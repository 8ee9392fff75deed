package subreport

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/flow"
)

// EquipmentTest renders one equipment test report. The parameter layout
// follows the equipment type; unknown types fall back to the generic
// measured-vs-expected table.
func (e *Engines) EquipmentTest(ctx context.Context, id string) ([]byte, error) {
	r, err := e.src.TestReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("test report %q: %w", id, err)
	}
	if r == nil {
		return nil, notFound("test report", id)
	}
	pr := e.project(ctx, r.ProjectID.String())

	kind := normalizeEquipmentType(r.EquipmentType.String())
	title := testReportTitle(kind)
	dec := decor.New(e.th, "test_report", title, r.ReportNo.String())

	els := testDetails(r, pr)
	els = append(els, parameterTable(r, kind)...)
	if remarks := r.Remarks.String(); remarks != "" {
		els = append(els,
			flow.Spacer{H: 2},
			flow.Banner{Text: "Remarks"},
			flow.Paragraph{Text: remarks})
	}
	els = append(els, resultBanner(r)...)

	doc := &flow.Document{
		Title:  title + " " + r.ReportNo.String(),
		Author: e.th.CompanyName,
		Cover: func(pdf *gofpdf.Fpdf) {
			dec.Cover(pdf, decor.CoverInfo{
				TitleLine1: strings.ToUpper(testReportSubject(kind)),
				TitleLine2: "TEST REPORT",
				Subtitle:   r.ReportNo.String(),
				Fields: []decor.Field{
					{Label: "Report No", Value: r.ReportNo.String()},
					{Label: "Equipment", Value: r.EquipmentName.String(), Wrap: true},
					{Label: "Test Date", Value: reportengine.FormatDate(r.TestDate.String())},
					{Label: "Tested By", Value: r.TestedBy.String()},
				},
			})
		},
		Header:   dec.Header,
		Footer:   dec.Footer,
		Elements: els,
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, e.th, doc); err != nil {
		return nil, fmt.Errorf("render test report %q: %w", id, err)
	}
	return buf.Bytes(), nil
}

func normalizeEquipmentType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "transformer"):
		return "transformer"
	case strings.Contains(s, "acb"), strings.Contains(s, "air circuit"):
		return "acb"
	case strings.Contains(s, "relay"):
		return "relay"
	case strings.Contains(s, "battery"):
		return "battery"
	default:
		return s
	}
}

func testReportSubject(kind string) string {
	switch kind {
	case "transformer":
		return "Transformer"
	case "acb":
		return "Air Circuit Breaker"
	case "relay":
		return "Protection Relay"
	case "battery":
		return "Battery Bank"
	default:
		if kind == "" {
			return "Equipment"
		}
		return strings.ToUpper(kind[:1]) + kind[1:]
	}
}

func testReportTitle(kind string) string {
	return testReportSubject(kind) + " Test Report"
}

func testDetails(r *reportengine.TestReport, pr *reportengine.Project) []flow.Element {
	rows := [][]string{
		{"Report No", r.ReportNo.String()},
		{"Equipment Type", r.EquipmentType.String()},
		{"Equipment", r.EquipmentName.String()},
		{"Test Date", reportengine.FormatDate(r.TestDate.String())},
		{"Tested By", r.TestedBy.String()},
	}
	if pr != nil {
		rows = append(rows,
			[]string{"Client", pr.Client.String()},
			[]string{"Location", pr.Location.String()})
	}
	return []flow.Element{
		flow.Banner{Text: "Test Details"},
		flow.Table{Widths: []float64{52, 0}, Rows: rows},
	}
}

// parameterTable renders the recorded measurements. When the document
// carries no parameter rows, the nominal checklist for the equipment type
// is printed with blank measurement columns for manual completion.
func parameterTable(r *reportengine.TestReport, kind string) []flow.Element {
	params := r.Parameters
	if len(params) == 0 {
		for _, name := range nominalParameters(kind) {
			params = append(params, reportengine.TestParam{Name: reportengine.Text(name)})
		}
	}
	rows := make([][]string, 0, len(params))
	for i, p := range params {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Name.String(),
			p.Unit.String(),
			p.Expected.String(),
			p.Measured.String(),
			p.Status.String(),
		})
	}
	return []flow.Element{
		flow.Spacer{H: 2},
		flow.Banner{Text: "Test Parameters"},
		flow.Table{
			Widths: []float64{10, 0, 18, 28, 28, 22},
			Aligns: []string{"C", "L", "C", "C", "C", "C"},
			Header: []string{"S.No", "Parameter", "Unit", "Expected", "Measured", "Status"},
			Rows:   rows,
		},
	}
}

// nominalParameters are the standard checklists used when a report stores
// no measurements of its own.
func nominalParameters(kind string) []string {
	switch kind {
	case "transformer":
		return []string{
			"Insulation resistance HV-E",
			"Insulation resistance LV-E",
			"Insulation resistance HV-LV",
			"Winding resistance per phase",
			"Oil BDV",
			"Turns ratio",
		}
	case "acb":
		return []string{
			"Contact resistance per pole",
			"Insulation resistance pole-earth",
			"Closing time",
			"Tripping time",
			"Overcurrent release operation",
		}
	case "relay":
		return []string{
			"Pickup current",
			"Operating time at 2x setting",
			"Operating time at 5x setting",
			"Instantaneous element",
		}
	case "battery":
		return []string{
			"Cell voltage",
			"Specific gravity",
			"Discharge test duration",
			"Terminal torque check",
		}
	default:
		return []string{
			"Visual inspection",
			"Insulation resistance",
			"Functional check",
		}
	}
}

func resultBanner(r *reportengine.TestReport) []flow.Element {
	result := strings.TrimSpace(r.Result.String())
	if result == "" {
		return nil
	}
	return []flow.Element{
		flow.Spacer{H: 2},
		flow.Banner{Text: "Overall Result: " + result},
	}
}
