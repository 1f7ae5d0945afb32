package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMarkup(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean line untouched", "10,SAW,Cut,50.0000,0.25,0.42,0.00,0.00,0.00,0.00", "10,SAW,Cut,50.0000,0.25,0.42,0.00,0.00,0.00,0.00"},
		{"table cell wrapper", "<td>Totals</td>,,,,1.00,0.50", "Totals,,,,1.00,0.50"},
		{"class attribute", `Totals class="grand-total",,,,1.00`, "Totals,,,,1.00"},
		{"named entity", "Cut &amp; weld,SAW", "Cut  weld,SAW"},
		{"numeric entity", "Part&#160;Number", "PartNumber"},
		{"malformed tag with spaces", "< div >Totals< /div >,,,,1.00", "Totals,,,,1.00"},
		{"empty separator run preserved", "Totals,,,,1.00,0.50", "Totals,,,,1.00,0.50"},
		{"tag carrying separators collapses run", "<td , , >a,,,,,b", "a,,b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeMarkup(tt.in, opts))
		})
	}
}

func TestSanitizeMarkupIsIdempotent(t *testing.T) {
	opts := DefaultOptions()
	inputs := []string{
		"<td>Totals</td>,,,,1.00,0.50\n<tr>10,SAW</tr>",
		"Totals,,,,1.00,0.50",
		"a,,,,,,b",
		`x class="y",z &amp; w`,
	}
	for _, in := range inputs {
		once := SanitizeMarkup(in, opts)
		assert.Equal(t, once, SanitizeMarkup(once, opts), "input %q", in)
	}
}

func TestSanitizeMarkupPreservesLineOrder(t *testing.T) {
	in := "<p>first</p>,a\nsecond,b\n<p>third</p>,c"
	assert.Equal(t, "first,a\nsecond,b\nthird,c", SanitizeMarkup(in, DefaultOptions()))
}
