package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	sheets := []Sheet{
		{
			Name:    "Seguimientos",
			Headers: []string{"ID Líder", "Nombre del Líder"},
			Rows: [][]interface{}{
				{int64(1), "Ana Torres"},
				{int64(2), "Luis Mora"},
			},
			ColWidths: []float64{10, 30},
		},
		{
			Name:    "Temas",
			Headers: []string{"ID Tema", "Calificación"},
			Rows: [][]interface{}{
				{"t1", 4},
			},
		},
	}

	buf, err := WriteWorkbook(sheets)
	require.NoError(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Seguimientos", "Temas"}, f.GetSheetList())

	header, err := f.GetCellValue("Seguimientos", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Nombre del Líder", header)

	cell, err := f.GetCellValue("Seguimientos", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Luis Mora", cell)

	rating, err := f.GetCellValue("Temas", "B2")
	require.NoError(t, err)
	assert.Equal(t, "4", rating)
}

func TestWriteWorkbookSinHojas(t *testing.T) {
	buf, err := WriteWorkbook(nil)
	assert.Error(t, err)
	assert.Nil(t, buf)
}
