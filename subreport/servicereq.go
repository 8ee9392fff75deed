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

// ServiceRequest renders one service request report.
func (e *Engines) ServiceRequest(ctx context.Context, id string) ([]byte, error) {
	r, err := e.src.ServiceRequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service request %q: %w", id, err)
	}
	if r == nil {
		return nil, notFound("service request", id)
	}
	pr := e.project(ctx, r.ProjectID.String())

	dec := decor.New(e.th, "service_report", "Service Request Report", r.RequestNo.String())

	rows := [][]string{
		{"Request No", r.RequestNo.String()},
		{"Request Date", reportengine.FormatDate(r.RequestDate.String())},
		{"Equipment", r.Equipment.String()},
		{"Status", r.Status.String()},
		{"Attended By", r.AttendedBy.String()},
		{"Completed On", reportengine.FormatDate(r.CompletedDate.String())},
	}
	if pr != nil {
		rows = append(rows,
			[]string{"Client", pr.Client.String()},
			[]string{"Location", pr.Location.String()})
	}

	els := []flow.Element{
		flow.Banner{Text: "Request Details"},
		flow.Table{Widths: []float64{52, 0}, Rows: rows},
	}
	if desc := strings.TrimSpace(r.Description.String()); desc != "" {
		els = append(els,
			flow.Spacer{H: 2},
			flow.Banner{Text: "Reported Problem"},
			flow.Paragraph{Text: desc})
	}
	if action := strings.TrimSpace(r.ActionTaken.String()); action != "" {
		els = append(els,
			flow.Spacer{H: 2},
			flow.Banner{Text: "Action Taken"},
			flow.Paragraph{Text: action})
	}

	doc := &flow.Document{
		Title:  "Service Request Report " + r.RequestNo.String(),
		Author: e.th.CompanyName,
		Cover: func(pdf *gofpdf.Fpdf) {
			dec.Cover(pdf, decor.CoverInfo{
				TitleLine1: "SERVICE REQUEST",
				TitleLine2: "REPORT",
				Subtitle:   r.RequestNo.String(),
				Fields: []decor.Field{
					{Label: "Request No", Value: r.RequestNo.String()},
					{Label: "Equipment", Value: r.Equipment.String(), Wrap: true},
					{Label: "Date", Value: reportengine.FormatDate(r.RequestDate.String())},
					{Label: "Status", Value: r.Status.String()},
				},
			})
		},
		Header:   dec.Header,
		Footer:   dec.Footer,
		Elements: els,
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, e.th, doc); err != nil {
		return nil, fmt.Errorf("render service request %q: %w", id, err)
	}
	return buf.Bytes(), nil
}
