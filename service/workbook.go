package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook escribe las hojas en un libro xlsx y devuelve sus bytes.
// Si alguna hoja falla no se devuelve archivo parcial.
func WriteWorkbook(sheets []Sheet) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// Renombrar la hoja por defecto en lugar de crear una nueva
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("error renombrando hoja %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("error creando hoja %q: %w", sheet.Name, err)
			}
		}

		if err := f.SetSheetRow(sheet.Name, "A1", &sheet.Headers); err != nil {
			return nil, fmt.Errorf("error escribiendo encabezados de %q: %w", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return nil, fmt.Errorf("error escribiendo fila %d de %q: %w", r+2, sheet.Name, err)
			}
		}

		for c, width := range sheet.ColWidths {
			col, err := excelize.ColumnNumberToName(c + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
				return nil, fmt.Errorf("error ajustando columnas de %q: %w", sheet.Name, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error generando el libro: %w", err)
	}

	return buf, nil
}
