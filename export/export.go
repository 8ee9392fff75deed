// Package export writes contract data to spreadsheet workbooks for the
// ERP's download endpoints: one sheet of service visits, one of the
// equipment list, one of spares and consumables.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/voltserv/reportengine"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]string
	widths  float64
}

// AMCWorkbook writes the contract's tabular data as an xlsx workbook.
func AMCWorkbook(w io.Writer, amc *reportengine.AMC) error {
	if amc == nil {
		return fmt.Errorf("export: nil amc")
	}

	sheets := []sheet{
		visitsSheet(amc),
		equipmentSheet(amc),
		sparesSheet(amc),
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	for si, s := range sheets {
		index, err := f.NewSheet(s.name)
		if err != nil {
			return fmt.Errorf("export: sheet %s: %w", s.name, err)
		}
		if si == 0 {
			f.SetActiveSheet(index)
		}

		for i, header := range s.headers {
			cell := fmt.Sprintf("%s1", column(i))
			f.SetCellValue(s.name, cell, header)
			f.SetCellStyle(s.name, cell, cell, headerStyle)
		}
		for rowIdx, row := range s.rows {
			for colIdx, value := range row {
				f.SetCellValue(s.name, fmt.Sprintf("%s%d", column(colIdx), rowIdx+2), value)
			}
		}
		for i := range s.headers {
			f.SetColWidth(s.name, column(i), column(i), s.widths)
		}
	}
	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func column(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

func visitsSheet(amc *reportengine.AMC) sheet {
	s := sheet{
		name:    "Service Visits",
		headers: []string{"S.No", "Date", "Type", "Equipment Serviced", "Technician", "Status", "Remarks"},
		widths:  18,
	}
	for i, v := range amc.ServiceVisits {
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", i+1),
			reportengine.FormatDate(v.VisitDate.String()),
			v.VisitType.String(),
			strings.Join(v.EquipmentServiced, ", "),
			v.TechnicianName.String(),
			v.Status.String(),
			v.Remarks.String(),
		})
	}
	return s
}

func equipmentSheet(amc *reportengine.AMC) sheet {
	s := sheet{
		name:    "Equipment",
		headers: []string{"S.No", "Type", "Equipment", "Qty", "Frequency", "Last Service", "Next Service"},
		widths:  18,
	}
	for i, e := range amc.EquipmentList {
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", i+1),
			e.EquipmentType.String(),
			e.EquipmentName.String(),
			fmt.Sprintf("%d", e.Quantity),
			e.ServiceFrequency.String(),
			reportengine.FormatDate(e.LastServiceDate.String()),
			reportengine.FormatDate(e.NextServiceDate.String()),
		})
	}
	return s
}

func sparesSheet(amc *reportengine.AMC) sheet {
	s := sheet{
		name:    "Spares & Consumables",
		headers: []string{"S.No", "Description", "Part No", "Qty", "Unit", "Remarks"},
		widths:  20,
	}
	var all []reportengine.SpareConsumable
	all = append(all, amc.SpareConsumables...)
	for _, v := range amc.ServiceVisits {
		all = append(all, v.SparePartsUsed...)
	}
	for i, sp := range all {
		s.rows = append(s.rows, []string{
			fmt.Sprintf("%d", i+1),
			sp.Description.String(),
			sp.PartNo.String(),
			sp.Quantity.String(),
			sp.Unit.String(),
			sp.Remarks.String(),
		})
	}
	return s
}
