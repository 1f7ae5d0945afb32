package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/macproducts/routergen/internal/router"
)

// Service is a tiny façade that turns a repaired routing document into
// downloadable artifacts.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// CSV returns the canonical comma-delimited form of a repaired document.
func (s *Service) CSV(doc *router.Document) []byte {
	return []byte(doc.Serialize())
}

// XLSX returns an XLSX workbook with the document laid out one field per
// cell on a single "Router" sheet.
func (s *Service) XLSX(doc *router.Document) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Router"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defaultIdx, _ := f.GetSheetIndex("Sheet1"); defaultIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, row := range doc.Rows {
		for j, field := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("cell name (%d,%d): %w", j+1, i+1, err)
			}
			if err := f.SetCellValue(sheet, cell, field); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(doc.Rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
