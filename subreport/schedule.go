package subreport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/lvillar/gofpdf"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/flow"
)

// scheduleMonths caps the grid at one contract year.
const scheduleMonths = 12

// ProjectSchedule renders the landscape maintenance schedule for a
// contract: one row per equipment item, one column per contract month,
// planned visits marked "P" and completed ones "C".
func (e *Engines) ProjectSchedule(amc *reportengine.AMC, pr *reportengine.Project) ([]byte, error) {
	if amc == nil {
		return nil, notFound("amc", "")
	}
	dec := decor.New(e.th, "project_schedule", "Maintenance Schedule", amc.AMCNo.String())

	start, ok := reportengine.ParseDate(amc.ContractDetails.StartDate.String())
	if !ok {
		start = e.now()
	}
	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := contractMonths(start, amc.ContractDetails.EndDate.String())
	header := append([]string{"Equipment", "Frequency"}, monthLabels(start, months)...)
	widths := make([]float64, len(header))
	widths[0] = 52
	widths[1] = 26
	aligns := make([]string, len(header))
	aligns[0], aligns[1] = "L", "L"
	for i := 2; i < len(header); i++ {
		aligns[i] = "C"
	}

	completed := completedByMonth(amc, start, months)

	rows := make([][]string, 0, len(amc.EquipmentList))
	for _, eq := range amc.EquipmentList {
		row := make([]string, len(header))
		row[0] = eq.EquipmentName.Or(eq.EquipmentType.String())
		row[1] = eq.ServiceFrequency.String()
		interval := frequencyInterval(eq.ServiceFrequency.String())
		for m := 0; m < months; m++ {
			mark := ""
			if interval > 0 && m%interval == interval-1 {
				mark = "P"
			}
			if completed[scheduleKey(eq, m)] {
				mark = "C"
			}
			row[2+m] = mark
		}
		rows = append(rows, row)
	}

	els := []flow.Element{
		flow.Banner{Text: "Annual Maintenance Schedule"},
		flow.Paragraph{Text: fmt.Sprintf("Contract %s, period %s.",
			amc.AMCNo.Or("-"), contractPeriodLabel(amc))},
		flow.Table{Widths: widths, Aligns: aligns, Header: header, Rows: rows},
		flow.Spacer{H: 2},
		flow.Note{Text: "P = planned visit, C = completed visit."},
	}
	if len(amc.EquipmentList) == 0 {
		els = []flow.Element{
			flow.Banner{Text: "Annual Maintenance Schedule"},
			flow.Note{Text: "No equipment has been recorded against this contract.", Centered: true},
		}
	}

	doc := &flow.Document{
		Title:       "Maintenance Schedule " + amc.AMCNo.String(),
		Author:      e.th.CompanyName,
		Orientation: "L",
		Cover: func(pdf *gofpdf.Fpdf) {
			dec.Cover(pdf, decor.CoverInfo{
				TitleLine1: "ANNUAL MAINTENANCE",
				TitleLine2: "SCHEDULE",
				Subtitle:   amc.AMCNo.String(),
				Fields:     scheduleCoverFields(amc, pr),
			})
		},
		Header:   dec.Header,
		Footer:   dec.Footer,
		Elements: els,
	}

	var buf bytes.Buffer
	if err := flow.Render(&buf, e.th, doc); err != nil {
		return nil, fmt.Errorf("render schedule for %q: %w", amc.ID, err)
	}
	return buf.Bytes(), nil
}

func scheduleCoverFields(amc *reportengine.AMC, pr *reportengine.Project) []decor.Field {
	fields := []decor.Field{
		{Label: "Contract No", Value: amc.ContractDetails.ContractNo.Or(amc.AMCNo.String())},
		{Label: "Period", Value: contractPeriodLabel(amc)},
		{Label: "Equipment Items", Value: fmt.Sprintf("%d", len(amc.EquipmentList))},
	}
	if pr != nil {
		fields = append(fields, decor.Field{Label: "Client", Value: pr.Client.String()})
	}
	return fields
}

func contractPeriodLabel(amc *reportengine.AMC) string {
	start := reportengine.FormatDate(amc.ContractDetails.StartDate.String())
	end := reportengine.FormatDate(amc.ContractDetails.EndDate.String())
	if start == "" && end == "" {
		return "-"
	}
	return start + " to " + end
}

// contractMonths counts whole months from start through the contract end,
// clamped to the one-year grid.
func contractMonths(start time.Time, endRaw string) int {
	end, ok := reportengine.ParseDate(endRaw)
	if !ok {
		return scheduleMonths
	}
	n := int(end.Month()) - int(start.Month()) + 12*(end.Year()-start.Year()) + 1
	if n < 1 {
		return 1
	}
	if n > scheduleMonths {
		return scheduleMonths
	}
	return n
}

func monthLabels(start time.Time, months int) []string {
	labels := make([]string, months)
	for m := 0; m < months; m++ {
		labels[m] = start.AddDate(0, m, 0).Format("Jan-06")
	}
	return labels
}

// frequencyInterval maps a service frequency to a month step. Unknown
// frequencies plan nothing.
func frequencyInterval(freq string) int {
	switch strings.ToLower(strings.TrimSpace(freq)) {
	case "monthly":
		return 1
	case "bi-monthly", "bimonthly":
		return 2
	case "quarterly":
		return 3
	case "half-yearly", "half yearly", "semi-annual", "semiannual":
		return 6
	case "yearly", "annual", "annually":
		return 12
	default:
		return 0
	}
}

// completedByMonth indexes the completed visits by equipment name and
// month offset from the schedule start.
func completedByMonth(amc *reportengine.AMC, start time.Time, months int) map[string]bool {
	out := map[string]bool{}
	for _, v := range amc.ServiceVisits {
		if !strings.EqualFold(v.Status.String(), "completed") {
			continue
		}
		d, ok := reportengine.ParseDate(v.VisitDate.String())
		if !ok {
			continue
		}
		m := int(d.Month()) - int(start.Month()) + 12*(d.Year()-start.Year())
		if m < 0 || m >= months {
			continue
		}
		for _, name := range v.EquipmentServiced {
			out[strings.ToLower(strings.TrimSpace(name))+"#"+fmt.Sprintf("%d", m)] = true
		}
	}
	return out
}

func scheduleKey(eq reportengine.EquipmentItem, month int) string {
	name := eq.EquipmentName.Or(eq.EquipmentType.String())
	return strings.ToLower(strings.TrimSpace(name)) + "#" + fmt.Sprintf("%d", month)
}
