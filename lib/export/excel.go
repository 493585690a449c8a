package export

import (
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ExportExcel writes the flattened records to a single-sheet xlsx
// workbook. An empty record set skips the file entirely.
func ExportExcel(records []map[string]any, path string) error {
	if len(records) == 0 {
		slog.Warn("no data to export to excel", "path", path)
		return nil
	}

	columns := columnNames(records)

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}
	err := workbook.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		return err
	}

	for rowIdx, record := range records {
		flat := flattenRecord(record)
		row := make([]any, len(columns))
		for i, column := range columns {
			row[i] = cellString(flat[column])
		}

		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return err
		}
		err = workbook.SetSheetRow(sheet, cell, &row)
		if err != nil {
			return err
		}
	}

	err = workbook.SaveAs(path)
	if err != nil {
		return err
	}

	slog.Info("exported records to excel", "count", len(records), "path", path)
	return nil
}
