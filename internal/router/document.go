package router

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// Row is one record of a routing document: an ordered list of text fields.
type Row []string

// Document is an ordered sequence of rows parsed from comma-delimited text.
// It is mutable during repair and must be treated as read-only once handed
// to the renderer.
type Document struct {
	Rows []Row
}

// RowKind classifies a row for repair and render purposes. Classification is
// by structural pattern on the row content, never by position alone, because
// repair may insert or remove rows.
type RowKind int

const (
	KindHeader RowKind = iota
	KindDateStamp
	KindTimeStamp
	KindPartInfoHeader
	KindPartInfoData
	KindOperationsHeader
	KindOperationData
	KindInstructionNote
	KindBlankSeparator
	KindTotals
	KindTotalsPerUnit
	KindEndOfReport
	KindFooterNote
)

var kindNames = map[RowKind]string{
	KindHeader:           "header",
	KindDateStamp:        "date_stamp",
	KindTimeStamp:        "time_stamp",
	KindPartInfoHeader:   "part_info_header",
	KindPartInfoData:     "part_info_data",
	KindOperationsHeader: "operations_header",
	KindOperationData:    "operation_data",
	KindInstructionNote:  "instruction_note",
	KindBlankSeparator:   "blank_separator",
	KindTotals:           "totals",
	KindTotalsPerUnit:    "totals_per_unit",
	KindEndOfReport:      "end_of_report",
	KindFooterNote:       "footer_note",
}

func (k RowKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Classify tags a row by inspecting its content. The checks are ordered from
// most to least specific; rows that match nothing fall back to part-info data
// (first field present) or instruction note (first field empty).
func Classify(row Row) RowKind {
	if row.IsBlank() {
		return KindBlankSeparator
	}
	first := strings.TrimSpace(row.Field(0))
	second := strings.TrimSpace(row.Field(1))

	switch {
	case strings.EqualFold(first, TotalsPerUnitLabel):
		return KindTotalsPerUnit
	case first == TotalsLabel:
		return KindTotals
	case row.hasFieldEqual(EndOfReportText):
		return KindEndOfReport
	case row.hasFieldContaining(FooterMarkerText):
		return KindFooterNote
	case first == "Op" && second == "Work Center":
		return KindOperationsHeader
	case first == "Facility" && row.hasFieldEqual("Part Number"):
		return KindPartInfoHeader
	case row.hasFieldPrefix("Date :") || row.hasFieldPrefix("Date:"):
		return KindDateStamp
	case row.hasFieldPrefix("Time :") || row.hasFieldPrefix("Time:"):
		return KindTimeStamp
	}

	if _, ok := ParseOpSeq(first); ok {
		return KindOperationData
	}
	if row.hasFieldContaining(ReportTitle) || row.hasFieldPrefix("Page") {
		return KindHeader
	}
	if first == "" && second != "" {
		return KindInstructionNote
	}
	if first != "" {
		return KindPartInfoData
	}
	return KindInstructionNote
}

// ParseOpSeq parses an operation sequence number. Model output writes either
// a bare number ("10") or an Op-prefixed one ("Op1"); both are accepted.
func ParseOpSeq(field string) (int, bool) {
	s := strings.TrimSpace(field)
	if len(s) >= 2 && strings.EqualFold(s[:2], "op") {
		s = strings.TrimSpace(s[2:])
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Field returns the i-th field or "" when the row is shorter.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// IsBlank reports whether every field is empty after trimming.
func (r Row) IsBlank() bool {
	for _, f := range r {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func (r Row) hasFieldEqual(want string) bool {
	for _, f := range r {
		if strings.TrimSpace(f) == want {
			return true
		}
	}
	return false
}

func (r Row) hasFieldPrefix(prefix string) bool {
	for _, f := range r {
		if strings.HasPrefix(strings.TrimSpace(f), prefix) {
			return true
		}
	}
	return false
}

func (r Row) hasFieldContaining(sub string) bool {
	for _, f := range r {
		if strings.Contains(f, sub) {
			return true
		}
	}
	return false
}

// Parse builds a Document from comma-delimited text. Quoted fields may
// contain commas. Blank lines are preserved as blank separator rows; a line
// the CSV reader rejects is split naively rather than dropped, since the
// source text is unstructured model output.
func Parse(text string) *Document {
	doc := &Document{}
	if strings.TrimSpace(text) == "" {
		return doc
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			doc.Rows = append(doc.Rows, Row{})
			continue
		}
		rd := csv.NewReader(strings.NewReader(line))
		rd.LazyQuotes = true
		rd.FieldsPerRecord = -1
		rd.TrimLeadingSpace = false
		rec, err := rd.Read()
		if err != nil {
			rec = strings.Split(line, ",")
		}
		doc.Rows = append(doc.Rows, Row(rec))
	}
	return doc
}

// Serialize renders the document back to CSV text. Fields containing a
// separator, quote, or newline are quoted.
func (d *Document) Serialize() string {
	var b strings.Builder
	for i, row := range d.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, f := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(f))
		}
	}
	return b.String()
}

func escapeField(f string) string {
	if strings.ContainsAny(f, ",\"\n") {
		return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return f
}

// IndexOf returns the index of the first row of the given kind, or -1.
func (d *Document) IndexOf(kind RowKind) int {
	for i, row := range d.Rows {
		if Classify(row) == kind {
			return i
		}
	}
	return -1
}

// Count returns the number of rows of the given kind.
func (d *Document) Count(kind RowKind) int {
	n := 0
	for _, row := range d.Rows {
		if Classify(row) == kind {
			n++
		}
	}
	return n
}

// Empty reports whether the document has no rows at all.
func (d *Document) Empty() bool {
	return len(d.Rows) == 0
}
