package section

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voltserv/reportengine"
	"github.com/voltserv/reportengine/annex"
	"github.com/voltserv/reportengine/flow"
)

// Nominal TOC page numbers for the fixed sections. The display numbering
// starts at the TOC page itself (the cover is page 0), so Section A lands
// on displayed page 2.
const (
	tocPageDocDetails  = 2
	tocPageExecSummary = 3
	tocPageScope       = 4
	tocPageEquipment   = 5
	tocPageVisits      = 6
	tocPageSpares      = 7
	tocPageFirstOpt    = 8 // first page after the fixed sections
)

// irItemsPerPage sets how many inspection rows fit one listing page; the
// IR section's displayed span grows with the item count and shifts the
// sections after it.
const irItemsPerPage = 12

func (in *Inputs) tableOfContents() []flow.Element {
	type entry struct {
		letter string
		desc   string
		page   string
	}

	entries := []entry{
		{"A", "Document Details", fmt.Sprintf("%d", tocPageDocDetails)},
		{"B", "Executive Summary", fmt.Sprintf("%d", tocPageExecSummary)},
		{"C", "Scope & Objective", fmt.Sprintf("%d", tocPageScope)},
		{"D", "Equipment List", fmt.Sprintf("%d", tocPageEquipment)},
		{"E", "Service Schedule & Visits", fmt.Sprintf("%d", tocPageVisits)},
		{"F", "Spare & Consumables Used", fmt.Sprintf("%d", tocPageSpares)},
	}

	next := tocPageFirstOpt
	if in.Plan.HasSection(annex.IRThermography) {
		span := irSpan(in.irItemCount())
		entries = append(entries, entry{
			in.Plan.SectionLetter(annex.IRThermography),
			annex.IRThermography.Title(),
			pageRange(next, span),
		})
		next += span
	}
	entries = append(entries, entry{
		in.Plan.SectionLetter(annex.EquipmentTests),
		annex.EquipmentTests.Title(),
		fmt.Sprintf("%d", next),
	})
	next++
	if in.Plan.HasSection(annex.ServiceReports) {
		entries = append(entries, entry{
			in.Plan.SectionLetter(annex.ServiceReports),
			annex.ServiceReports.Title(),
			fmt.Sprintf("%d", next),
		})
		next++
	}
	entries = append(entries, entry{
		in.Plan.SectionLetter(annex.StatutoryDocuments),
		annex.StatutoryDocuments.Title(),
		fmt.Sprintf("%d", next),
	})

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), e.letter, e.desc, e.page})
	}

	return []flow.Element{
		flow.Banner{Text: "Contents"},
		flow.Table{
			Widths: []float64{16, 24, 0, 26},
			Aligns: []string{"C", "C", "L", "C"},
			Header: []string{"S.No", "Section", "Description", "Page No."},
			Rows:   rows,
		},
	}
}

func (in *Inputs) irItemCount() int {
	n := 0
	for _, r := range in.IRReports {
		if len(r.Items) > 0 {
			n += len(r.Items)
		} else {
			n += r.Risk.Total()
		}
	}
	return n
}

func irSpan(items int) int {
	if items <= irItemsPerPage {
		return 1
	}
	return (items + irItemsPerPage - 1) / irItemsPerPage
}

func pageRange(start, span int) string {
	if span <= 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d-%d", start, start+span-1)
}

func (in *Inputs) irListing() []flow.Element {
	letter := in.Plan.SectionLetter(annex.IRThermography)
	rows := make([][]string, 0, len(in.IRReports))
	for i, r := range in.IRReports {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.ReportNo.String(),
			r.SiteLocation.String(),
			reportengine.FormatDate(r.InspectionDate.String()),
			r.Risk.Summary(),
		})
	}
	els := []flow.Element{
		flow.Banner{Text: fmt.Sprintf("Section %s - %s", letter, annex.IRThermography.Title())},
		flow.Table{
			Widths: []float64{10, 34, 0, 24, 42},
			Aligns: []string{"C", "L", "L", "C", "C"},
			Header: []string{"S.No", "Report No", "Site / Location", "Date", "Risk Summary"},
			Rows:   rows,
		},
	}
	if n := in.Plan.Number(annex.IRThermography); n > 0 {
		els = append(els, flow.Note{Text: fmt.Sprintf("Full reports are attached as Annexure - %d.", n)})
	}
	return els
}

func (in *Inputs) testReportListing() []flow.Element {
	letter := in.Plan.SectionLetter(annex.EquipmentTests)
	els := []flow.Element{
		flow.Banner{Text: fmt.Sprintf("Section %s - %s", letter, annex.EquipmentTests.Title())},
	}
	if len(in.TestReports) == 0 {
		els = append(els, flow.Note{Text: "No equipment test reports are linked to this contract.", Centered: true})
		return els
	}
	rows := make([][]string, 0, len(in.TestReports))
	for i, r := range in.TestReports {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.ReportNo.String(),
			r.EquipmentType.String(),
			r.EquipmentName.String(),
			reportengine.FormatDate(r.TestDate.String()),
			r.Result.String(),
		})
	}
	els = append(els, flow.Table{
		Widths: []float64{10, 32, 28, 0, 24, 22},
		Aligns: []string{"C", "L", "L", "L", "C", "C"},
		Header: []string{"S.No", "Report No", "Equipment Type", "Equipment", "Test Date", "Result"},
		Rows:   rows,
	})
	if n := in.Plan.Number(annex.EquipmentTests); n > 0 {
		els = append(els, flow.Note{Text: fmt.Sprintf("Full reports are attached as Annexure - %d.", n)})
	}
	return els
}

func (in *Inputs) serviceReportListing() []flow.Element {
	letter := in.Plan.SectionLetter(annex.ServiceReports)
	rows := make([][]string, 0, len(in.ServiceRequests))
	for i, r := range in.ServiceRequests {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.RequestNo.String(),
			reportengine.FormatDate(r.RequestDate.String()),
			r.Equipment.String(),
			r.Description.String(),
			r.Status.String(),
		})
	}
	els := []flow.Element{
		flow.Banner{Text: fmt.Sprintf("Section %s - %s", letter, annex.ServiceReports.Title())},
		flow.Table{
			Widths: []float64{10, 30, 22, 32, 0, 22},
			Aligns: []string{"C", "L", "C", "L", "L", "C"},
			Header: []string{"S.No", "Request No", "Date", "Equipment", "Description", "Status"},
			Rows:   rows,
		},
	}
	if n := in.Plan.Number(annex.ServiceReports); n > 0 {
		els = append(els, flow.Note{Text: fmt.Sprintf("Full reports are attached as Annexure - %d.", n)})
	}
	return els
}

func (in *Inputs) statutoryListing() []flow.Element {
	letter := in.Plan.SectionLetter(annex.StatutoryDocuments)
	els := []flow.Element{
		flow.Banner{Text: fmt.Sprintf("Section %s - %s", letter, annex.StatutoryDocuments.Title())},
	}
	docs := in.AMC.StatutoryDocuments
	if len(docs) == 0 {
		els = append(els, flow.Note{
			Text:     "No statutory documents or attachments have been uploaded for this contract.",
			Centered: true,
		})
		return els
	}
	rows := make([][]string, 0, len(docs))
	for i, d := range docs {
		attached := "-"
		if strings.TrimSpace(d.FileURL.String()) != "" {
			attached = "Attached"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			d.Type.String(),
			d.Name.String(),
			d.ReferenceNo.String(),
			attached,
		})
	}
	els = append(els, flow.Table{
		Widths: []float64{10, 34, 0, 38, 24},
		Aligns: []string{"C", "L", "L", "L", "C"},
		Header: []string{"S.No", "Type", "Document", "Reference No", "File"},
		Rows:   rows,
	})
	if n := in.Plan.Number(annex.StatutoryDocuments); n > 0 {
		els = append(els, flow.Note{Text: fmt.Sprintf("Uploaded files are appended as Annexure - %d.", n)})
	}
	return els
}

// SortTestReports orders equipment test reports canonically: first by the
// position of their equipment type in the contract's equipment list, then
// by report number ascending. Types absent from the list (and every report
// when the list is empty) sort after known types by report number alone.
func SortTestReports(reports []reportengine.TestReport, equipment []reportengine.EquipmentItem) {
	rank := make(map[string]int, len(equipment))
	for i, e := range equipment {
		key := strings.ToLower(strings.TrimSpace(e.EquipmentType.String()))
		if _, seen := rank[key]; !seen {
			rank[key] = i
		}
	}
	pos := func(r reportengine.TestReport) int {
		if p, ok := rank[strings.ToLower(strings.TrimSpace(r.EquipmentType.String()))]; ok {
			return p
		}
		return len(equipment)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		pi, pj := pos(reports[i]), pos(reports[j])
		if pi != pj {
			return pi < pj
		}
		return reports[i].ReportNo < reports[j].ReportNo
	})
}
