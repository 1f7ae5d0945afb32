package llm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKnowledgeEmbeddedDefault(t *testing.T) {
	kb, err := LoadKnowledge("")
	require.NoError(t, err)
	require.NotEmpty(t, kb.WorkCenters)
	assert.NotEmpty(t, kb.Rules)

	codes := map[string]WorkCenter{}
	for _, wc := range kb.WorkCenters {
		codes[wc.Code] = wc
	}
	require.Contains(t, codes, "SAW")
	assert.Equal(t, "0.25", codes["SAW"].SetupHours)
	require.Contains(t, codes, "PAINT")
	assert.Equal(t, "4.00", codes["PAINT"].MoveHours)
}

func TestLoadKnowledgeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	body := `{"work_centers":[{"code":"SAW","name":"Cut Off Saw Area","setup_hours":"0.25","instruction":"CUT PER DWG."}],"rules":["one rule"]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	kb, err := LoadKnowledge(path)
	require.NoError(t, err)
	require.Len(t, kb.WorkCenters, 1)
	assert.Equal(t, "SAW", kb.WorkCenters[0].Code)
}

func TestLoadKnowledgeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing work_centers", `{"rules":["r"]}`},
		{"empty work_centers", `{"work_centers":[]}`},
		{"work center missing code", `{"work_centers":[{"name":"Saw","setup_hours":"0.25","instruction":"x"}]}`},
		{"unknown top-level key", `{"work_centers":[{"code":"SAW","name":"Saw","setup_hours":"0.25","instruction":"x"}],"extra":1}`},
		{"not json", `work_centers: saw`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kb.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := LoadKnowledge(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadKnowledgeMissingFile(t *testing.T) {
	_, err := LoadKnowledge(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
