// Package section builds the body of the composite AMC report as an
// ordered stream of flow elements: table of contents, document details,
// executive summary, scope, equipment list, visits, consumables, and the
// sub-report and statutory listings.
package section

import (
	"fmt"
	"strings"
	"time"

	gtable "github.com/lvillar/gofpdf/table"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/annex"
	"github.com/voltserv/reportengine/flow"
	"github.com/voltserv/reportengine/theme"
)

// Inputs is everything the builder needs for one AMC body. The composer
// gathers and pre-sorts the dependent documents; the builder only lays
// them out.
type Inputs struct {
	AMC     *reportengine.AMC
	Project *reportengine.Project
	Theme   *theme.Snapshot
	Plan    annex.Plan

	TestReports     []reportengine.TestReport // canonical order, see SortTestReports
	IRReports       []reportengine.IRReport
	ServiceRequests []reportengine.ServiceRequest
	RiskTotals      reportengine.RiskDistribution

	Now time.Time
}

// Build emits the full body element stream. Every section begins with a
// colored banner and ends with a page break so sections start on fresh
// pages.
func Build(in *Inputs) []flow.Element {
	sections := [][]flow.Element{
		in.tableOfContents(),
		in.documentDetails(),
		in.executiveSummary(),
		in.scopeObjective(),
		in.equipmentList(),
		in.serviceVisits(),
		in.spareConsumables(),
	}
	if in.Plan.HasSection(annex.IRThermography) {
		sections = append(sections, in.irListing())
	}
	sections = append(sections, in.testReportListing())
	if in.Plan.HasSection(annex.ServiceReports) {
		sections = append(sections, in.serviceReportListing())
	}
	sections = append(sections, in.statutoryListing())

	var out []flow.Element
	for i, s := range sections {
		out = append(out, s...)
		if i < len(sections)-1 {
			out = append(out, flow.PageBreak{})
		}
	}
	return out
}

// customer resolves the fall-back chain customer_info -> project -> empty.
func (in *Inputs) customer() (name, location, contact, number, email string) {
	var ci reportengine.CustomerInfo
	if in.AMC.CustomerInfo != nil {
		ci = *in.AMC.CustomerInfo
	}
	var pr reportengine.Project
	if in.Project != nil {
		pr = *in.Project
	}
	name = ci.CustomerName.Or(pr.Client.String())
	location = ci.SiteLocation.Or(pr.Location.String())
	contact = ci.ContactPerson.Or(pr.EngineerInCharge.String())
	number = ci.ContactNumber.String()
	email = ci.Email.String()
	return
}

// provider resolves the fall-back chain service_provider -> theme.
func (in *Inputs) provider() (company, address, contact, gstin string) {
	var sp reportengine.ServiceProvider
	if in.AMC.ServiceProvider != nil {
		sp = *in.AMC.ServiceProvider
	}
	company = sp.CompanyName.Or(in.Theme.CompanyName)
	address = sp.Address.Or(in.Theme.Address())
	contact = sp.Contact.Or(in.Theme.Phone)
	gstin = sp.GSTIN.String()
	return
}

// contractPeriod renders "start to end" with both dates normalized.
func (in *Inputs) contractPeriod() string {
	cd := in.AMC.ContractDetails
	start := reportengine.FormatDate(cd.StartDate.String())
	end := reportengine.FormatDate(cd.EndDate.String())
	if start == "" && end == "" {
		return ""
	}
	return start + " to " + end
}

func (in *Inputs) documentDetails() []flow.Element {
	letter := "A"
	name, location, contact, number, email := in.customer()
	company, addr, phone, gstin := in.provider()

	ident := flow.Table{
		Widths: []float64{52, 0},
		Rows: [][]string{
			{"Document Title", "Annual Maintenance Contract Service Report"},
			{"Document No", in.AMC.AMCNo.String()},
			{"Revision", "00"},
			{"Issue Date", reportengine.FormatTime(in.Now)},
			{"Contract No", in.AMC.ContractDetails.ContractNo.String()},
			{"Contract Period", in.contractPeriod()},
		},
	}
	cust := flow.Table{
		Widths: []float64{52, 0},
		Rows: [][]string{
			{"Customer Name", name},
			{"Site Location", location},
			{"Contact Person", contact},
			{"Contact Number", number},
			{"Email", email},
		},
	}

	prov := flow.Table{
		Widths: []float64{52, 0},
		Rows: [][]string{
			{"Company Name", company},
			{"Address", addr},
			{"Contact", phone},
			{"GSTIN", gstin},
		},
	}

	return []flow.Element{
		flow.Banner{Text: fmt.Sprintf("Section %s - Document Details", letter)},
		ident,
		flow.Spacer{H: 2},
		flow.Banner{Text: "Customer Information"},
		cust,
		flow.Spacer{H: 2},
		flow.Banner{Text: "Service Provider"},
		prov,
	}
}

func (in *Inputs) executiveSummary() []flow.Element {
	name, location, _, _, _ := in.customer()
	els := []flow.Element{
		flow.Banner{Text: "Section B - Executive Summary"},
	}

	lastVisit := ""
	for _, v := range in.AMC.ServiceVisits {
		if d := reportengine.FormatDate(v.VisitDate.String()); d != "" {
			lastVisit = d
		}
	}

	intro := fmt.Sprintf(
		"This report summarises the annual maintenance services delivered under contract %s for %s at %s.",
		in.AMC.AMCNo.Or("-"), orDash(name), orDash(location))
	if lastVisit != "" {
		intro += fmt.Sprintf(" The most recent service visit was completed on %s.", lastVisit)
	}
	els = append(els, flow.Paragraph{Text: intro})

	if !in.RiskTotals.IsZero() {
		els = append(els, in.riskDistribution()...)
		return els
	}

	// No IR data: summarise the work performed instead of the risk table.
	completed := 0
	for _, v := range in.AMC.ServiceVisits {
		if strings.EqualFold(v.Status.String(), "completed") {
			completed++
		}
	}
	work := fmt.Sprintf(
		"Summary of Work Performed: %d service visit(s) were recorded during the contract period, of which %d are completed. "+
			"Details of each visit, the equipment serviced, and the consumables used are provided in the following sections.",
		len(in.AMC.ServiceVisits), completed)
	els = append(els, flow.Paragraph{Text: work})
	return els
}

func (in *Inputs) riskDistribution() []flow.Element {
	labels := reportengine.SeverityLabels()
	buckets := in.RiskTotals.Buckets()
	colors := theme.SeverityColors()

	rows := make([][]string, len(labels))
	for i := range labels {
		rows[i] = []string{labels[i], fmt.Sprintf("%d", buckets[i])}
	}
	tbl := flow.Table{
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
	}

	return []flow.Element{
		flow.Paragraph{Text: "Thermographic inspections performed during the contract identified the following risk distribution across all inspected points:"},
		tbl,
		flow.Spacer{H: 2},
		flow.BarChart{Labels: labels, Values: buckets, Colors: colors},
	}
}

func (in *Inputs) scopeObjective() []flow.Element {
	els := []flow.Element{
		flow.Banner{Text: "Section C - Scope & Objective"},
	}
	scope := strings.TrimSpace(in.AMC.ContractDetails.ScopeOfWork.String())
	if scope != "" {
		// Stored scope keeps its author's line structure.
		scope = strings.ReplaceAll(scope, "\r\n", "\n")
		els = append(els, flow.Paragraph{Text: scope})
	} else {
		for _, b := range defaultScope() {
			els = append(els, flow.Paragraph{Text: "-  " + b})
		}
	}
	if cond := strings.TrimSpace(in.AMC.ContractDetails.SpecialConditions.String()); cond != "" {
		els = append(els,
			flow.Spacer{H: 2},
			flow.Banner{Text: "Special Conditions"},
			flow.Paragraph{Text: cond})
	}
	return els
}

// defaultScope is the fixed scope shown when the contract records none.
func defaultScope() []string {
	return []string{
		"Periodic preventive maintenance of all equipment covered under the contract.",
		"Testing and condition assessment of switchgear, transformers, and protection systems.",
		"Infrared thermography surveys of panels, joints, and terminations.",
		"Attending breakdown calls and restoring supply at the earliest.",
		"Submission of service reports and recommendations after every visit.",
	}
}

func (in *Inputs) equipmentList() []flow.Element {
	els := []flow.Element{
		flow.Banner{Text: "Section D - Equipment List"},
	}
	if len(in.AMC.EquipmentList) == 0 {
		els = append(els, flow.Note{Text: "No equipment has been recorded against this contract.", Centered: true})
		return els
	}
	rows := make([][]string, 0, len(in.AMC.EquipmentList))
	for i, e := range in.AMC.EquipmentList {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.EquipmentType.String(),
			e.EquipmentName.String(),
			fmt.Sprintf("%d", e.Quantity),
			e.ServiceFrequency.String(),
			reportengine.FormatDate(e.LastServiceDate.String()),
			reportengine.FormatDate(e.NextServiceDate.String()),
		})
	}
	els = append(els, flow.Table{
		Widths: []float64{10, 28, 0, 12, 26, 24, 24},
		Aligns: []string{"C", "L", "L", "C", "C", "C", "C"},
		Header: []string{"S.No", "Type", "Equipment", "Qty", "Frequency", "Last Service", "Next Service"},
		Rows:   rows,
	})
	return els
}

func (in *Inputs) serviceVisits() []flow.Element {
	els := []flow.Element{
		flow.Banner{Text: "Section E - Service Schedule & Visits"},
	}
	if len(in.AMC.ServiceVisits) == 0 {
		els = append(els, flow.Paragraph{
			Text: "No service visits have been carried out under this contract yet. The schedule will be updated after the first visit.",
		})
		return els
	}
	rows := make([][]string, 0, len(in.AMC.ServiceVisits))
	for i, v := range in.AMC.ServiceVisits {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			reportengine.FormatDate(v.VisitDate.String()),
			v.VisitType.String(),
			strings.Join(v.EquipmentServiced, ", "),
			v.TechnicianName.String(),
			v.Status.String(),
			v.Remarks.String(),
		})
	}
	els = append(els, flow.Table{
		Widths: []float64{10, 22, 24, 0, 28, 20, 40},
		Aligns: []string{"C", "C", "L", "L", "L", "C", "L"},
		Header: []string{"S.No", "Date", "Type", "Equipment Serviced", "Technician", "Status", "Remarks"},
		Rows:   rows,
	})
	return els
}

func (in *Inputs) spareConsumables() []flow.Element {
	els := []flow.Element{
		flow.Banner{Text: "Section F - Spare & Consumables Used"},
	}

	// Union of the contract-level list and per-visit usage.
	var all []reportengine.SpareConsumable
	all = append(all, in.AMC.SpareConsumables...)
	for _, v := range in.AMC.ServiceVisits {
		all = append(all, v.SparePartsUsed...)
	}

	header := []string{"S.No", "Description", "Part No", "Qty", "Unit", "Remarks"}
	widths := []float64{10, 0, 30, 14, 16, 40}
	aligns := []string{"C", "L", "L", "C", "C", "L"}

	if len(all) == 0 {
		// Empty skeleton: five blank rows for manual completion on site.
		rows := make([][]string, 5)
		for i := range rows {
			rows[i] = []string{fmt.Sprintf("%d", i+1), "", "", "", "", ""}
		}
		els = append(els, flow.Table{Widths: widths, Aligns: aligns, Header: header, Rows: rows})
		return els
	}

	rows := make([][]string, 0, len(all))
	for i, s := range all {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Description.String(),
			s.PartNo.String(),
			s.Quantity.String(),
			s.Unit.String(),
			s.Remarks.String(),
		})
	}
	els = append(els, flow.Table{Widths: widths, Aligns: aligns, Header: header, Rows: rows})
	return els
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
