// Package export serializes the in-memory tables to a multi-sheet .xlsx workbook.
package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/kodiarasan/sheetflow/internal/dataset"
)

// WriteWorkbook writes one sheet per table, in table order, using each table
// name as the sheet title. Row one is the header; data rows follow. Any I/O
// failure on the destination path is propagated.
func WriteWorkbook(path string, tables []dataset.Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, table := range tables {
		if i == 0 {
			// Rename the default sheet rather than leaving an empty Sheet1 behind.
			if err := f.SetSheetName("Sheet1", table.Name); err != nil {
				return fmt.Errorf("failed to rename first sheet to %q: %w", table.Name, err)
			}
		} else {
			if _, err := f.NewSheet(table.Name); err != nil {
				return fmt.Errorf("failed to add sheet %q: %w", table.Name, err)
			}
		}

		header := make([]any, len(table.Columns))
		for c, col := range table.Columns {
			header[c] = col
		}
		if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of %q: %w", table.Name, err)
		}

		for r, row := range table.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address row %d of %q: %w", r+2, table.Name, err)
			}
			rowCopy := row
			if err := f.SetSheetRow(table.Name, cell, &rowCopy); err != nil {
				return fmt.Errorf("failed to write row %d of %q: %w", r+2, table.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}

	slog.Info("workbook exported", "path", path, "sheets", len(tables))
	return nil
}

// ReadWorkbook reads a workbook written by WriteWorkbook back into tables.
// Cell values come back as display strings; it exists to verify round-trip
// fidelity of the export step.
func ReadWorkbook(path string) ([]dataset.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var tables []dataset.Table
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		table := dataset.Table{Name: name}
		for i, row := range rows {
			if i == 0 {
				table.Columns = row
				continue
			}
			values := make([]any, len(row))
			for c, v := range row {
				values[c] = v
			}
			table.Rows = append(table.Rows, values)
		}
		tables = append(tables, table)
	}
	return tables, nil
}
