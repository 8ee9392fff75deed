package subreport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lvillar/gofpdf"
	gtable "github.com/lvillar/gofpdf/table"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/flow"
	"github.com/voltserv/reportengine/theme"
)

// IRThermography renders one infrared thermography survey report. With
// policy NoClosing the declaration page is dropped so the report can be
// embedded in a composite without its own sign-off.
func (e *Engines) IRThermography(ctx context.Context, id string, policy ClosingPolicy) ([]byte, error) {
	r, err := e.src.IRReport(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("ir report %q: %w", id, err)
	}
	if r == nil {
		return nil, notFound("ir report", id)
	}
	pr := e.project(ctx, r.ProjectID.String())

	dec := decor.New(e.th, "ir_thermography", "Infrared Thermography Report", r.ReportNo.String())

	els := irSurveyDetails(r, pr)
	els = append(els, irRiskSummary(r)...)
	els = append(els, irItemTable(r)...)
	if remarks := r.Remarks.String(); remarks != "" {
		els = append(els,
			flow.Spacer{H: 2},
			flow.Banner{Text: "Remarks & Recommendations"},
			flow.Paragraph{Text: remarks})
	}
	if policy == Full {
		els = append(els, flow.PageBreak{})
		els = append(els, declaration(dec, r.InspectedBy.String())...)
	}

	doc := &flow.Document{
		Title:  "Infrared Thermography Report " + r.ReportNo.String(),
		Author: e.th.CompanyName,
		Cover: func(pdf *gofpdf.Fpdf) {
			dec.Cover(pdf, decor.CoverInfo{
				TitleLine1: "INFRARED THERMOGRAPHY",
				TitleLine2: "SURVEY REPORT",
				Subtitle:   r.ReportNo.String(),
				Fields:     irCoverFields(r, pr),
			})
		},
		Header:   dec.Header,
		Footer:   dec.Footer,
		Elements: els,
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, e.th, doc); err != nil {
		return nil, fmt.Errorf("render ir report %q: %w", id, err)
	}
	return buf.Bytes(), nil
}

func irCoverFields(r *reportengine.IRReport, pr *reportengine.Project) []decor.Field {
	fields := []decor.Field{
		{Label: "Report No", Value: r.ReportNo.String()},
		{Label: "Site / Location", Value: r.SiteLocation.String(), Wrap: true},
		{Label: "Inspection Date", Value: reportengine.FormatDate(r.InspectionDate.String())},
		{Label: "Inspected By", Value: r.InspectedBy.String()},
	}
	if pr != nil {
		fields = append(fields, decor.Field{Label: "Client", Value: pr.Client.String()})
	}
	return fields
}

func irSurveyDetails(r *reportengine.IRReport, pr *reportengine.Project) []flow.Element {
	rows := [][]string{
		{"Report No", r.ReportNo.String()},
		{"Site / Location", r.SiteLocation.String()},
		{"Inspection Date", reportengine.FormatDate(r.InspectionDate.String())},
		{"Inspected By", r.InspectedBy.String()},
		{"Points Inspected", fmt.Sprintf("%d", len(r.Items))},
	}
	if pr != nil {
		rows = append(rows,
			[]string{"Client", pr.Client.String()},
			[]string{"Project", pr.ProjectName.String()})
	}
	return []flow.Element{
		flow.Banner{Text: "Survey Details"},
		flow.Table{Widths: []float64{52, 0}, Rows: rows},
	}
}

func irRiskSummary(r *reportengine.IRReport) []flow.Element {
	risk := r.Risk
	if risk.IsZero() {
		risk = riskFromItems(r.Items)
	}
	if risk.IsZero() {
		return nil
	}

	labels := reportengine.SeverityLabels()
	buckets := risk.Buckets()
	colors := theme.SeverityColors()

	rows := make([][]string, len(labels))
	for i := range labels {
		rows[i] = []string{labels[i], fmt.Sprintf("%d", buckets[i])}
	}

	return []flow.Element{
		flow.Spacer{H: 2},
		flow.Banner{Text: "Risk Distribution"},
		flow.Table{
			Widths: []float64{70, 40},
			Aligns: []string{"L", "C"},
			Header: []string{"Severity", "Count"},
			Rows:   rows,
			StyleCell: func(row, col int, cell *gtable.Cell) {
				if col == 0 && row < len(colors) {
					c := colors[row]
					cell.SetStyle(gtable.CellStyle{
						FillColor: &gtable.RGBColor{R: c.R, G: c.G, B: c.B},
						TextColor: &gtable.RGBColor{R: 255, G: 255, B: 255},
						Font:      &gtable.FontSpec{Family: "Helvetica", Style: "B", Size: 9},
					})
				}
			},
		},
		flow.Spacer{H: 2},
		flow.BarChart{Labels: labels, Values: buckets, Colors: colors},
	}
}

// riskFromItems rebuilds the distribution from per-item severities when
// the stored document carries none.
func riskFromItems(items []reportengine.IRItem) reportengine.RiskDistribution {
	var risk reportengine.RiskDistribution
	for _, it := range items {
		risk.Count(it.Severity.String())
	}
	return risk
}

func irItemTable(r *reportengine.IRReport) []flow.Element {
	if len(r.Items) == 0 {
		return []flow.Element{
			flow.Spacer{H: 2},
			flow.Note{Text: "No inspection points were recorded in this survey.", Centered: true},
		}
	}
	rows := make([][]string, 0, len(r.Items))
	for i, it := range r.Items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			it.Location.String(),
			it.Equipment.String(),
			it.Phase.String(),
			fmt.Sprintf("%.1f", it.MaxTempC),
			fmt.Sprintf("%.1f", it.RefTempC),
			it.Severity.String(),
			it.Observation.String(),
		})
	}
	return []flow.Element{
		flow.Spacer{H: 2},
		flow.Banner{Text: "Inspection Points"},
		flow.Table{
			Widths: []float64{10, 30, 28, 12, 16, 16, 24, 0},
			Aligns: []string{"C", "L", "L", "C", "C", "C", "C", "L"},
			Header: []string{"S.No", "Location", "Equipment", "Phase", "Max Temp C", "Ref Temp C", "Severity", "Observation"},
			Rows:   rows,
		},
	}
}
