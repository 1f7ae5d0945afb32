package repair

import (
	"log/slog"
	"strings"

	"github.com/macproducts/routergen/internal/router"
)

// code-operator sequences that must not survive into a rendered field
var codeArtifacts = []string{"==", "!=", "&&", "||"}

// RepairStructure normalizes a parsed document in place so it satisfies the
// structural invariants the renderer relies on. It is best-effort and never
// fails: an empty document passes through unchanged and is surfaced as an
// empty result by the caller.
func RepairStructure(doc *router.Document, opts Options, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if doc.Empty() {
		return
	}

	dropArtifactRows(doc, opts, logger)
	normalizeOperationRows(doc, logger)
	normalizeTotalsRows(doc, logger)
	insertTotalsSpacing(doc)
	ensureMandatorySections(doc, logger)
}

// dropArtifactRows enforces the markup/code-artifact invariant: rows with
// more artifact hits than the tolerance are irrecoverable and dropped; rows
// at or under it are scrubbed so no field keeps a delimiter or operator.
func dropArtifactRows(doc *router.Document, opts Options, logger *slog.Logger) {
	tolerance := opts.ArtifactTolerance
	if tolerance < 0 {
		tolerance = defaultArtifactTolerance
	}

	kept := doc.Rows[:0]
	for _, row := range doc.Rows {
		n := artifactCount(row)
		switch {
		case n == 0:
			kept = append(kept, row)
		case n > tolerance:
			logger.Warn("repair.structure.artifact_row_dropped", "hits", n, "tolerance", tolerance)
		default:
			kept = append(kept, scrubArtifacts(row))
		}
	}
	doc.Rows = kept
}

func artifactCount(row router.Row) int {
	n := 0
	for _, f := range row {
		for _, tok := range codeArtifacts {
			n += strings.Count(f, tok)
		}
		n += strings.Count(f, "<")
		n += strings.Count(f, ">")
	}
	return n
}

func scrubArtifacts(row router.Row) router.Row {
	out := make(router.Row, len(row))
	for i, f := range row {
		for _, tok := range codeArtifacts {
			f = strings.ReplaceAll(f, tok, "")
		}
		f = strings.ReplaceAll(f, "<", "")
		f = strings.ReplaceAll(f, ">", "")
		out[i] = f
	}
	return out
}

// normalizeOperationRows forces every operation data row to exactly the
// canonical field count, padding with "0.00" and filling any empty numeric
// field (setup through standard cost).
func normalizeOperationRows(doc *router.Document, logger *slog.Logger) {
	for i, row := range doc.Rows {
		if router.Classify(row) != router.KindOperationData {
			continue
		}
		orig := len(row)
		for len(row) < router.OperationFieldCount {
			row = append(row, router.ZeroAmount)
		}
		if len(row) > router.OperationFieldCount {
			row = row[:router.OperationFieldCount]
		}
		for j := 4; j < router.OperationFieldCount; j++ {
			if strings.TrimSpace(row[j]) == "" {
				row[j] = router.ZeroAmount
			}
		}
		if orig != router.OperationFieldCount {
			logger.Debug("repair.structure.operation_row_resized", "from", orig, "to", len(row))
		}
		doc.Rows[i] = row
	}
}

// normalizeTotalsRows matches both totals rows to the operation field count
// by inserting empty fields immediately after the label. Duplicates beyond
// the first of each kind are dropped so exactly one of each survives.
func normalizeTotalsRows(doc *router.Document, logger *slog.Logger) {
	seen := map[router.RowKind]bool{}
	kept := doc.Rows[:0]
	for _, row := range doc.Rows {
		kind := router.Classify(row)
		if kind != router.KindTotals && kind != router.KindTotalsPerUnit {
			kept = append(kept, row)
			continue
		}
		if seen[kind] {
			logger.Warn("repair.structure.duplicate_totals_dropped", "kind", kind.String())
			continue
		}
		seen[kind] = true
		kept = append(kept, padAfterLabel(row))
	}
	doc.Rows = kept
}

func padAfterLabel(row router.Row) router.Row {
	for len(row) < router.OperationFieldCount {
		row = append(row[:1], append(router.Row{""}, row[1:]...)...)
	}
	if len(row) > router.OperationFieldCount {
		row = row[:router.OperationFieldCount]
	}
	return row
}

// insertTotalsSpacing restores the blank separator between a trailing
// instruction note and the totals row that follows it.
func insertTotalsSpacing(doc *router.Document) {
	for i := 0; i+1 < len(doc.Rows); i++ {
		if router.Classify(doc.Rows[i]) == router.KindInstructionNote &&
			router.Classify(doc.Rows[i+1]) == router.KindTotals {
			rows := append(doc.Rows[:i+1:i+1], append([]router.Row{router.BlankRow()}, doc.Rows[i+1:]...)...)
			doc.Rows = rows
			i++
		}
	}
}

// ensureMandatorySections appends any missing structural row (totals,
// totals per unit, end-of-report marker, footer) in canonical zeroed form,
// each preceded by a blank separator.
func ensureMandatorySections(doc *router.Document, logger *slog.Logger) {
	required := []struct {
		kind      router.RowKind
		canonical func() router.Row
	}{
		{router.KindTotals, router.CanonicalTotals},
		{router.KindTotalsPerUnit, router.CanonicalTotalsPerUnit},
		{router.KindEndOfReport, router.CanonicalEndOfReport},
		{router.KindFooterNote, router.CanonicalFooter},
	}
	for _, req := range required {
		if doc.IndexOf(req.kind) >= 0 {
			continue
		}
		logger.Info("repair.structure.section_appended", "kind", req.kind.String())
		doc.Rows = append(doc.Rows, router.BlankRow(), req.canonical())
	}
}
