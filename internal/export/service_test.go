package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/macproducts/routergen/internal/router"
)

func testService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCSVMatchesSerialization(t *testing.T) {
	doc := router.Parse("10,SAW,Cut,50.0000,0.25,0.42,0.00,0.00,0.00,0.00\n\nTotals,,,,0.25,0.42,0.00,0.00,0.00,$ 0.00")
	got := testService().CSV(doc)
	assert.Equal(t, doc.Serialize(), string(got))
}

func TestXLSXRoundTrip(t *testing.T) {
	doc := router.Parse("MAC,,,,,Standard Routing Summary\n10,SAW,CUT OFF SAW AREA,50.0000,0.25,0.42,0.00,0.00,0.00,0.00")
	data, err := testService().XLSX(doc)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Router"}, f.GetSheetList())

	v, err := f.GetCellValue("Router", "A1")
	require.NoError(t, err)
	assert.Equal(t, "MAC", v)

	v, err = f.GetCellValue("Router", "C2")
	require.NoError(t, err)
	assert.Equal(t, "CUT OFF SAW AREA", v)
}

func TestXLSXEmptyDocument(t *testing.T) {
	data, err := testService().XLSX(&router.Document{})
	require.NoError(t, err)
	assert.NotEmpty(t, data, "an empty workbook is still a valid file")
}
