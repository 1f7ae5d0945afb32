package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFenced(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", "a,b,c\nd,e,f", "a,b,c\nd,e,f"},
		{"plain fence", "```\na,b,c\n```", "a,b,c"},
		{"csv tag", "```csv\na,b,c\nd,e,f\n```", "a,b,c\nd,e,f"},
		{"prose around fence", "Here is the router:\n```csv\na,b,c\n```\nLet me know.", "a,b,c"},
		{"unterminated fence", "```csv\na,b,c\nd,e,f", "a,b,c\nd,e,f"},
		{"surrounding whitespace", "  \n```\na,b\n```\n  ", "a,b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFenced(tt.in))
		})
	}
}

func TestExtractFencedIsIdempotent(t *testing.T) {
	in := "```csv\na,b,c\n```"
	once := ExtractFenced(in)
	assert.Equal(t, once, ExtractFenced(once))
}
