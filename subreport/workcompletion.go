package subreport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/flow"
)

// WorkCompletion renders the work completion certificate for a contract:
// a completion statement, the visit summary, and the customer sign-off
// block.
func (e *Engines) WorkCompletion(amc *reportengine.AMC, pr *reportengine.Project) ([]byte, error) {
	if amc == nil {
		return nil, notFound("amc", "")
	}
	dec := decor.New(e.th, "work_completion", "Work Completion Report", amc.AMCNo.String())

	client := "-"
	if amc.CustomerInfo != nil && amc.CustomerInfo.CustomerName.String() != "" {
		client = amc.CustomerInfo.CustomerName.String()
	} else if pr != nil {
		client = pr.Client.Or("-")
	}

	completed := 0
	for _, v := range amc.ServiceVisits {
		if strings.EqualFold(v.Status.String(), "completed") {
			completed++
		}
	}

	els := []flow.Element{
		flow.Banner{Text: "Work Completion Certificate"},
		flow.Paragraph{Text: fmt.Sprintf(
			"This is to certify that the maintenance services under contract %s for %s "+
				"have been carried out as per the agreed scope. %d of %d scheduled service "+
				"visit(s) stand completed as on %s.",
			amc.AMCNo.Or("-"), client, completed, len(amc.ServiceVisits),
			reportengine.FormatTime(e.now()))},
	}

	if len(amc.ServiceVisits) > 0 {
		rows := make([][]string, 0, len(amc.ServiceVisits))
		for i, v := range amc.ServiceVisits {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				reportengine.FormatDate(v.VisitDate.String()),
				v.VisitType.String(),
				v.TechnicianName.String(),
				v.Status.String(),
			})
		}
		els = append(els,
			flow.Spacer{H: 2},
			flow.Banner{Text: "Visit Summary"},
			flow.Table{
				Widths: []float64{10, 24, 32, 0, 24},
				Aligns: []string{"C", "C", "L", "L", "C"},
				Header: []string{"S.No", "Date", "Type", "Technician", "Status"},
				Rows:   rows,
			})
	}

	els = append(els,
		flow.Spacer{H: 16},
		flow.Table{
			Widths: []float64{0, 0},
			Aligns: []string{"C", "C"},
			Rows: [][]string{
				{"", ""},
				{"For " + e.th.CompanyName, "Customer Acknowledgement"},
			},
		})

	doc := &flow.Document{
		Title:  "Work Completion Report " + amc.AMCNo.String(),
		Author: e.th.CompanyName,
		Cover: func(pdf *gofpdf.Fpdf) {
			dec.Cover(pdf, decor.CoverInfo{
				TitleLine1: "WORK COMPLETION",
				TitleLine2: "REPORT",
				Subtitle:   amc.AMCNo.String(),
				Fields: []decor.Field{
					{Label: "Contract No", Value: amc.ContractDetails.ContractNo.Or(amc.AMCNo.String())},
					{Label: "Customer", Value: client, Wrap: true},
					{Label: "Visits Completed", Value: fmt.Sprintf("%d of %d", completed, len(amc.ServiceVisits))},
				},
			})
		},
		Header:   dec.Header,
		Footer:   dec.Footer,
		Elements: els,
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, e.th, doc); err != nil {
		return nil, fmt.Errorf("render work completion for %q: %w", amc.ID, err)
	}
	return buf.Bytes(), nil
}
