package router

import (
	"fmt"
	"strconv"
	"strings"
)

// OperationRecord is the semantic view of an operation data row. Hour and
// cost fields stay as decimal strings; nothing downstream does arithmetic
// on them and reformatting model output would lose the original precision.
type OperationRecord struct {
	Seq             int
	WorkCenter      string
	Description     string
	OperationQty    string
	SetupHours      string
	RunHours        string
	MoveHours       string
	SubContractCost string
	OtherCost       string
	StandardCost    string
}

// ParseOperation builds an OperationRecord from a repaired operation row.
func ParseOperation(row Row) (OperationRecord, error) {
	if Classify(row) != KindOperationData {
		return OperationRecord{}, fmt.Errorf("not an operation row: %q", []string(row))
	}
	if len(row) != OperationFieldCount {
		return OperationRecord{}, fmt.Errorf("operation row has %d fields, want %d", len(row), OperationFieldCount)
	}
	seq, _ := ParseOpSeq(row[0])
	return OperationRecord{
		Seq:             seq,
		WorkCenter:      strings.TrimSpace(row[1]),
		Description:     strings.TrimSpace(row[2]),
		OperationQty:    strings.TrimSpace(row[3]),
		SetupHours:      strings.TrimSpace(row[4]),
		RunHours:        strings.TrimSpace(row[5]),
		MoveHours:       strings.TrimSpace(row[6]),
		SubContractCost: strings.TrimSpace(row[7]),
		OtherCost:       strings.TrimSpace(row[8]),
		StandardCost:    strings.TrimSpace(row[9]),
	}, nil
}

// QtyMatches reports whether the operation quantity equals the requested
// document-level quantity. Quantities arrive as decimals ("50.0000").
func (o OperationRecord) QtyMatches(requested int) bool {
	f, err := strconv.ParseFloat(o.OperationQty, 64)
	if err != nil {
		return false
	}
	return f == float64(requested)
}

// MismatchedOperations returns every operation in the document whose
// quantity does not equal the requested one. Rows that fail to parse as
// operations are skipped; their shape is repair's problem, not this check's.
func MismatchedOperations(d *Document, requested int) []OperationRecord {
	var out []OperationRecord
	for _, row := range d.Rows {
		op, err := ParseOperation(row)
		if err != nil {
			continue
		}
		if !op.QtyMatches(requested) {
			out = append(out, op)
		}
	}
	return out
}
