package annex_test

import (
	"bytes"
	"testing"

	"github.com/lvillar/gofpdf/reader"

	"github.com/voltserv/reportengine/annex"
	"github.com/voltserv/reportengine/decor"
	"github.com/voltserv/reportengine/theme"
)

func TestNumberingIsDense(t *testing.T) {
	cases := []struct {
		name                       string
		ir, tests, service, statut int
		want                       map[annex.Category]int
	}{
		{
			name: "all present",
			ir:   1, tests: 2, service: 1, statut: 1,
			want: map[annex.Category]int{
				annex.IRThermography:     1,
				annex.EquipmentTests:     2,
				annex.ServiceReports:     3,
				annex.StatutoryDocuments: 4,
			},
		},
		{
			name:  "tests only",
			tests: 1,
			want: map[annex.Category]int{
				annex.IRThermography:     0,
				annex.EquipmentTests:     1,
				annex.ServiceReports:     0,
				annex.StatutoryDocuments: 0,
			},
		},
		{
			name: "ir and statutory",
			ir:   2, statut: 3,
			want: map[annex.Category]int{
				annex.IRThermography:     1,
				annex.EquipmentTests:     0,
				annex.ServiceReports:     0,
				annex.StatutoryDocuments: 2,
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := annex.NewPlan(c.ir, c.tests, c.service, c.statut)
			for cat, want := range c.want {
				if got := p.Number(cat); got != want {
					t.Errorf("Number(%v) = %d, want %d", cat.Title(), got, want)
				}
			}
		})
	}
}

func TestSectionLettersShiftWithIR(t *testing.T) {
	// Without IR reports, equipment tests hold G and statutory documents H.
	p := annex.NewPlan(0, 1, 0, 0)
	if got := p.SectionLetter(annex.EquipmentTests); got != "G" {
		t.Errorf("tests letter = %q, want G", got)
	}
	if got := p.SectionLetter(annex.StatutoryDocuments); got != "H" {
		t.Errorf("statutory letter = %q, want H", got)
	}
	if got := p.SectionLetter(annex.IRThermography); got != "" {
		t.Errorf("absent IR letter = %q, want empty", got)
	}

	// With IR present, IR takes G, tests shift to H, statutory to I.
	p = annex.NewPlan(1, 1, 0, 0)
	if got := p.SectionLetter(annex.IRThermography); got != "G" {
		t.Errorf("IR letter = %q, want G", got)
	}
	if got := p.SectionLetter(annex.EquipmentTests); got != "H" {
		t.Errorf("tests letter = %q, want H", got)
	}
	if got := p.SectionLetter(annex.StatutoryDocuments); got != "I" {
		t.Errorf("statutory letter = %q, want I", got)
	}

	// Service reports slot between tests and statutory.
	p = annex.NewPlan(1, 1, 2, 0)
	if got := p.SectionLetter(annex.ServiceReports); got != "I" {
		t.Errorf("service letter = %q, want I", got)
	}
	if got := p.SectionLetter(annex.StatutoryDocuments); got != "J" {
		t.Errorf("statutory letter = %q, want J", got)
	}
}

func TestStatutoryHoldsLargestLetter(t *testing.T) {
	combos := [][4]int{{0, 0, 0, 0}, {1, 0, 0, 0}, {0, 1, 0, 1}, {3, 2, 1, 4}}
	for _, c := range combos {
		p := annex.NewPlan(c[0], c[1], c[2], c[3])
		stat := p.SectionLetter(annex.StatutoryDocuments)
		for cat := annex.IRThermography; cat <= annex.ServiceReports; cat++ {
			if l := p.SectionLetter(cat); l != "" && l >= stat {
				t.Errorf("combo %v: %v letter %q >= statutory %q", c, cat.Title(), l, stat)
			}
		}
	}
}

func TestHasSection(t *testing.T) {
	p := annex.NewPlan(0, 0, 0, 0)
	if !p.HasSection(annex.EquipmentTests) || !p.HasSection(annex.StatutoryDocuments) {
		t.Error("equipment tests and statutory sections must always appear")
	}
	if p.HasSection(annex.IRThermography) || p.HasSection(annex.ServiceReports) {
		t.Error("optional sections must be hidden when empty")
	}
}

func TestSeparatorRendersOnePage(t *testing.T) {
	th := theme.FromSettings(nil)
	dec := decor.New(th, "amc", "AMC REPORT", "AMC/2025/0001")

	p := annex.NewPlan(2, 0, 0, 0)
	data, err := p.Separator(dec, annex.IRThermography, 2)
	if err != nil {
		t.Fatalf("separator: %v", err)
	}
	out, err := reader.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.NumPages() != 1 {
		t.Errorf("separator pages = %d, want 1", out.NumPages())
	}

	// A shortfall (one of the two documents failed to render) still
	// yields the separator page.
	short, err := p.Separator(dec, annex.IRThermography, 1)
	if err != nil {
		t.Fatalf("shortfall separator: %v", err)
	}
	if out, err := reader.ReadFrom(bytes.NewReader(short)); err != nil || out.NumPages() != 1 {
		t.Errorf("shortfall separator pages = %v, %v", out, err)
	}

	if _, err := p.Separator(dec, annex.EquipmentTests, 0); err == nil {
		t.Error("absent category separator should error")
	}
}
