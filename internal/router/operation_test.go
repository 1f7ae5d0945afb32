package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	row := Row{"10", "SAW", "CUT OFF SAW AREA", "50.0000", "0.25", "0.42", "0.00", "0.00", "0.00", "0.00"}
	op, err := ParseOperation(row)
	require.NoError(t, err)
	assert.Equal(t, 10, op.Seq)
	assert.Equal(t, "SAW", op.WorkCenter)
	assert.Equal(t, "CUT OFF SAW AREA", op.Description)
	assert.Equal(t, "50.0000", op.OperationQty)
	assert.Equal(t, "0.25", op.SetupHours)
	assert.Equal(t, "0.42", op.RunHours)
}

func TestParseOperationRejectsShortRow(t *testing.T) {
	_, err := ParseOperation(Row{"10", "SAW", "Cut", "50.0000", "0.25"})
	require.Error(t, err)
}

func TestParseOperationRejectsNonOperation(t *testing.T) {
	_, err := ParseOperation(Row{"Totals", "", "", "", "2.25", "1.19", "0.00", "0.00", "0.00", "$ 0.00"})
	require.Error(t, err)
}

func TestQtyMatches(t *testing.T) {
	op := OperationRecord{OperationQty: "50.0000"}
	assert.True(t, op.QtyMatches(50))
	assert.False(t, op.QtyMatches(25))
	assert.False(t, OperationRecord{OperationQty: "n/a"}.QtyMatches(50))
}

func TestMismatchedOperations(t *testing.T) {
	doc := Parse("10,SAW,Cut,50.0000,0.25,0.42,0.00,0.00,0.00,0.00\n" +
		"20,WELD,Weld,25.0000,1.00,0.77,0.00,0.00,0.00,0.00\n" +
		",FINAL INSPECTION,,,,,,,,\n" +
		"Totals,,,,1.25,1.19,0.00,0.00,0.00,$ 0.00")

	bad := MismatchedOperations(doc, 50)
	require.Len(t, bad, 1)
	assert.Equal(t, 20, bad[0].Seq)
	assert.Equal(t, "25.0000", bad[0].OperationQty)

	assert.Len(t, MismatchedOperations(doc, 30), 2)
	single := Parse("10,SAW,Cut,50.0000,0.25,0.42,0.00,0.00,0.00,0.00")
	assert.Empty(t, MismatchedOperations(single, 50))
}
