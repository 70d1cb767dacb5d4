package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/PanelCut/internal/engine"
	"github.com/piwi3910/PanelCut/internal/model"
)

const (
	inputsSheet  = "Inputs"
	cutListSheet = "Cut List"
)

// ExportExcel writes the job to a workbook with an "Inputs" sheet of
// label/value pairs and a "Cut List" sheet with one row per panel.
func ExportExcel(path string, job model.Job, result model.GeometryResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), inputsSheet); err != nil {
		return fmt.Errorf("failed to name inputs sheet: %w", err)
	}
	if _, err := f.NewSheet(cutListSheet); err != nil {
		return fmt.Errorf("failed to create cut list sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	inputs := [][]interface{}{{"Job", job.Name}, {"Job ID", job.ID}}
	for _, item := range inputItems(job.Spec) {
		inputs = append(inputs, []interface{}{item.label, item.value})
	}
	inputs = append(inputs,
		[]interface{}{"Step Length (in)", excelNumber(result.StepLength)},
		[]interface{}{"Top Angle (deg)", excelNumber(result.TopAngleDisplay)},
		[]interface{}{"Bottom Angle (deg)", excelNumber(result.BottomAngleDisplay)},
	)
	if result.SameDirection {
		inputs = append(inputs, []interface{}{"Slope Adjustment (in)", excelNumber(result.SlopeAdjustment)})
	}
	if err := writeRows(f, inputsSheet, inputs); err != nil {
		return err
	}
	if err := f.SetCellStyle(inputsSheet, "A1", fmt.Sprintf("A%d", len(inputs)), bold); err != nil {
		return fmt.Errorf("failed to style inputs: %w", err)
	}
	if err := f.SetColWidth(inputsSheet, "A", "B", 24); err != nil {
		return fmt.Errorf("failed to size inputs columns: %w", err)
	}

	header := []interface{}{"Panel", "Length (in)", "Length (ft-in)"}
	if result.SameDirection {
		header = append(header, "Run (in)")
	}
	rows := [][]interface{}{header}
	for i, length := range result.PanelLengths {
		row := []interface{}{i + 1, excelNumber(length), engine.ToFeetInches(length)}
		if result.SameDirection {
			row = append(row, excelNumber(result.RunLengths[i]))
		}
		rows = append(rows, row)
	}
	if err := writeRows(f, cutListSheet, rows); err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(cutListSheet, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("failed to style cut list header: %w", err)
	}
	if err := f.SetColWidth(cutListSheet, "A", "D", 16); err != nil {
		return fmt.Errorf("failed to size cut list columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to build cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, ref, err)
			}
		}
	}
	return nil
}

// excelNumber keeps undefined values readable in the sheet.
func excelNumber(v float64) interface{} {
	if engine.IsUndefined(v) {
		return "N/A"
	}
	return v
}
