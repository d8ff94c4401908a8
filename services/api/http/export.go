package http

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportLimit     = 5000
	leiturasSheet   = "Leituras"
)

// leiturasExportHeader is the first row of the readings workbook.
var leiturasExportHeader = []string{
	"Data/Hora",
	"Valor",
	"Unidade",
	"Nível Montante",
	"Inconsistência",
	"Tipo de Inconsistência",
	"Origem",
	"Observações",
}

var leiturasColumnWidths = []float64{20, 12, 10, 16, 15, 28, 12, 40}

// leiturasWorkbook renders readings of one instrument, one row per reading.
func leiturasWorkbook(inst *models.Instrumento, leituras []models.Leitura) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leiturasSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(leiturasSheet, "A1", &leiturasExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(leiturasExportHeader), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(leiturasSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	for i, width := range leiturasColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(leiturasSheet, col, col, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	unidade := deref(inst.UnidadeMedida)
	for i, l := range leituras {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		inconsistencia := "Não"
		if l.Inconsistencia {
			inconsistencia = "Sim"
		}
		row := []any{
			l.DataHora.Format("2006-01-02 15:04:05"),
			l.Valor,
			unidade,
			deref(l.NivelMontante),
			inconsistencia,
			deref(l.TipoInconsistencia),
			l.Origem,
			deref(l.Observacoes),
		}
		if err := f.SetSheetRow(leiturasSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// safeFileName keeps instrument codes usable in a Content-Disposition header.
func safeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
