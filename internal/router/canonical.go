package router

// Fixed report texts of the M2M Standard Routing Summary layout.
const (
	ReportTitle        = "Standard Routing Summary"
	TotalsLabel        = "Totals"
	TotalsPerUnitLabel = "Totals per Unit"
	EndOfReportText    = "End of Report"
	FooterMarkerText   = "report was requested by"
	FooterText         = "This report was requested by MAC ROUTER GENERATOR"
)

// OperationFieldCount is the exact field count of an operation data row:
// op, work center, description, op qty, setup, run, move, sub-contract,
// other, standard cost.
const OperationFieldCount = 10

// ZeroAmount pads missing numeric fields during repair.
const ZeroAmount = "0.00"

// BlankRow returns a blank separator row with the standard column shape.
func BlankRow() Row {
	return make(Row, OperationFieldCount)
}

// CanonicalTotals returns a zeroed totals row.
func CanonicalTotals() Row {
	return Row{TotalsLabel, "", "", "", ZeroAmount, ZeroAmount, ZeroAmount, ZeroAmount, ZeroAmount, "$ 0.00"}
}

// CanonicalTotalsPerUnit returns a zeroed totals-per-unit row.
func CanonicalTotalsPerUnit() Row {
	return Row{TotalsPerUnitLabel, "", "", "", ZeroAmount, ZeroAmount, ZeroAmount, ZeroAmount, ZeroAmount, "$ 0.00"}
}

// CanonicalEndOfReport returns the end-of-report marker row.
func CanonicalEndOfReport() Row {
	return Row{"", "", "", "", "", EndOfReportText, "", "", "", ""}
}

// CanonicalFooter returns the trailing attribution row.
func CanonicalFooter() Row {
	return Row{"", "", "", "", "", FooterText, "", "", "", ""}
}
