package render

import (
	"strings"

	"github.com/macproducts/routergen/internal/router"
)

// RowStyle distinguishes how an operations-table row is displayed.
type RowStyle string

const (
	StyleData        RowStyle = "data"
	StyleInstruction RowStyle = "instruction"
	StyleTotals      RowStyle = "totals"
)

// ViewRow is one row of the operations table. Instruction rows carry a
// single cell spanning the table's full column count.
type ViewRow struct {
	Style RowStyle
	Cells []string
	Span  int
}

// View is the display structure built from a repaired document: header
// block, part-information table, operations table, and footer block.
type View struct {
	Source   string
	Title    string
	PageInfo string
	DateInfo string
	TimeInfo string

	PartColumns []string
	PartValues  []string

	OpColumns []string
	OpRows    []ViewRow

	EndMarker string
	Footer    string
}

// Empty reports whether the view carries nothing renderable.
func (v View) Empty() bool {
	return v.Source == "" && v.Title == "" && len(v.OpRows) == 0 && len(v.PartValues) == 0
}

// Build renders a repaired document into its display structure. It is a pure
// function: the same document always yields the same view.
func Build(doc *router.Document) View {
	var v View
	if doc == nil || doc.Empty() {
		return v
	}

	for i, row := range doc.Rows {
		switch router.Classify(row) {
		case router.KindHeader:
			if v.Source == "" {
				v.Source = strings.TrimSpace(row.Field(0))
			}
			for _, f := range row {
				f = strings.TrimSpace(f)
				switch {
				case strings.Contains(f, router.ReportTitle):
					v.Title = f
				case strings.HasPrefix(f, "Page"):
					v.PageInfo = f
				}
			}
		case router.KindDateStamp:
			v.DateInfo = firstNonEmpty(row)
		case router.KindTimeStamp:
			v.TimeInfo = firstNonEmpty(row)
		case router.KindPartInfoHeader:
			v.PartColumns, v.PartValues = buildPartInfo(doc, i)
		case router.KindOperationsHeader:
			if v.OpColumns == nil {
				v.OpColumns = headerColumns(row)
			}
		case router.KindOperationData:
			v.OpRows = append(v.OpRows, ViewRow{Style: StyleData, Cells: cells(row)})
		case router.KindInstructionNote:
			v.OpRows = append(v.OpRows, ViewRow{
				Style: StyleInstruction,
				Cells: []string{strings.TrimSpace(row.Field(1))},
				Span:  router.OperationFieldCount,
			})
		case router.KindTotals, router.KindTotalsPerUnit:
			v.OpRows = append(v.OpRows, ViewRow{Style: StyleTotals, Cells: cells(row)})
		case router.KindEndOfReport:
			v.EndMarker = router.EndOfReportText
		case router.KindFooterNote:
			v.Footer = firstNonEmpty(row)
		}
	}
	return v
}

// buildPartInfo pairs the part-info header with its following data row. The
// data row is looked up forward from the header rather than assumed adjacent,
// since repair may have inserted rows between them.
func buildPartInfo(doc *router.Document, headerIdx int) (cols, vals []string) {
	header := doc.Rows[headerIdx]
	for _, f := range header {
		if strings.TrimSpace(f) != "" {
			cols = append(cols, strings.TrimSpace(f))
		}
	}
	for _, row := range doc.Rows[headerIdx+1:] {
		kind := router.Classify(row)
		if kind == router.KindBlankSeparator {
			continue
		}
		if kind != router.KindPartInfoData {
			break
		}
		for i := range cols {
			vals = append(vals, strings.TrimSpace(row.Field(i)))
		}
		break
	}
	return cols, vals
}

func headerColumns(row router.Row) []string {
	cols := make([]string, router.OperationFieldCount)
	for i := range cols {
		cols[i] = strings.TrimSpace(row.Field(i))
	}
	return cols
}

func cells(row router.Row) []string {
	out := make([]string, router.OperationFieldCount)
	for i := range out {
		out[i] = row.Field(i)
	}
	return out
}

func firstNonEmpty(row router.Row) string {
	for _, f := range row {
		if s := strings.TrimSpace(f); s != "" {
			return s
		}
	}
	return ""
}
