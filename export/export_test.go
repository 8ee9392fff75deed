package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/voltserv/reportengine"
)

func TestAMCWorkbookSheets(t *testing.T) {
	amc := &reportengine.AMC{
		ID:    "a1",
		AMCNo: "AMC/2025/0001",
		EquipmentList: []reportengine.EquipmentItem{
			{EquipmentType: "transformer", EquipmentName: "TX-1", Quantity: 1, ServiceFrequency: "Quarterly"},
		},
		ServiceVisits: []reportengine.ServiceVisit{
			{
				VisitDate: "2025-05-02", VisitType: "Preventive", Status: "completed",
				TechnicianName:    "R. Iyer",
				EquipmentServiced: []string{"TX-1"},
				SparePartsUsed: []reportengine.SpareConsumable{
					{Description: "HV fuse", Quantity: "2", Unit: "nos"},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := AMCWorkbook(&buf, amc); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"Service Visits", "Equipment", "Spares & Consumables"} {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			t.Errorf("missing sheet %q", name)
		}
	}

	got, err := f.GetCellValue("Service Visits", "B2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "02-05-2025" {
		t.Errorf("visit date cell = %q, want 02-05-2025", got)
	}

	qty, err := f.GetCellValue("Spares & Consumables", "D2")
	if err != nil {
		t.Fatal(err)
	}
	if qty != "2" {
		t.Errorf("spare qty cell = %q, want 2", qty)
	}
}

func TestAMCWorkbookNilAMC(t *testing.T) {
	var buf bytes.Buffer
	if err := AMCWorkbook(&buf, nil); err == nil {
		t.Error("nil amc should error")
	}
}
