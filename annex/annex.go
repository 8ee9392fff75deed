// Package annex sequences the trailing annexure blocks of a composite
// report: which categories are present, their dense 1..k numbering, the
// shifting section letters in the body and TOC, and the separator title
// pages between blocks.
package annex

import "fmt"

// Category is one annexure category, in the fixed attachment order.
type Category int

const (
	IRThermography Category = iota
	EquipmentTests
	ServiceReports
	StatutoryDocuments
	numCategories
)

// Title returns the display name used on separators and in the TOC.
func (c Category) Title() string {
	switch c {
	case IRThermography:
		return "IR Thermography Reports"
	case EquipmentTests:
		return "Equipment Test Reports"
	case ServiceReports:
		return "Service Reports"
	case StatutoryDocuments:
		return "Statutory Documents & Attachments"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Plan fixes the annexure sequence for one build. It is computed once from
// the gathered documents, and every consumer (TOC, body banners, separator
// pages, page concatenation) reads the same plan, so letters and numbers
// always agree.
type Plan struct {
	counts [numCategories]int
}

// NewPlan builds a plan from the number of attached documents per category.
// For statutory documents the count is the number of entries with an
// attachable PDF file, not the number of listing rows.
func NewPlan(irReports, equipmentTests, serviceReports, statutoryFiles int) Plan {
	var p Plan
	p.counts[IRThermography] = irReports
	p.counts[EquipmentTests] = equipmentTests
	p.counts[ServiceReports] = serviceReports
	p.counts[StatutoryDocuments] = statutoryFiles
	return p
}

// Has reports whether the category contributes an annexure.
func (p Plan) Has(c Category) bool { return p.counts[c] > 0 }

// Count returns the number of attached documents for the category.
func (p Plan) Count(c Category) int { return p.counts[c] }

// Number returns the dense annexure number (1..k) of a present category in
// the fixed order {IR, Equipment Tests, Service, Statutory}. Absent
// categories return 0.
func (p Plan) Number(c Category) int {
	if !p.Has(c) {
		return 0
	}
	n := 0
	for cat := IRThermography; cat <= c; cat++ {
		if p.Has(cat) {
			n++
		}
	}
	return n
}

// Present returns the present categories in annexure order.
func (p Plan) Present() []Category {
	var out []Category
	for c := IRThermography; c < numCategories; c++ {
		if p.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// SectionLetter returns the body/TOC letter of the section that references
// the category. Sections A-F are fixed; the optional IR section takes the
// first free letter, Equipment Test Reports and Statutory Documents are
// always listed (Statutory holds the largest used letter), and Service
// Reports appear only when present.
func (p Plan) SectionLetter(c Category) string {
	next := byte('G')
	letters := map[Category]byte{}

	if p.Has(IRThermography) {
		letters[IRThermography] = next
		next++
	}
	letters[EquipmentTests] = next
	next++
	if p.Has(ServiceReports) {
		letters[ServiceReports] = next
		next++
	}
	letters[StatutoryDocuments] = next

	l, ok := letters[c]
	if !ok {
		return ""
	}
	return string(l)
}

// HasSection reports whether the category gets a body section at all.
// Equipment tests and statutory documents always do (with empty-state
// content); IR and service report sections appear only when present.
func (p Plan) HasSection(c Category) bool {
	switch c {
	case EquipmentTests, StatutoryDocuments:
		return true
	default:
		return p.Has(c)
	}
}
