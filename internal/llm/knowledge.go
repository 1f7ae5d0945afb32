package llm

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed knowledge.json
var defaultKnowledge []byte

// WorkCenter is one coded shop resource with its timing heuristics and the
// instruction template its operations carry.
type WorkCenter struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	SetupHours         string `json:"setup_hours"`
	MoveHours          string `json:"move_hours,omitempty"`
	RunMinutesPerPiece string `json:"run_minutes_per_piece"`
	Instruction        string `json:"instruction"`
}

// Example is a worked routing used as few-shot guidance.
type Example struct {
	Part        string   `json:"part"`
	Description string   `json:"description,omitempty"`
	Quantity    int      `json:"quantity"`
	Operations  []string `json:"operations"`
}

// KnowledgeBase is the routing domain knowledge embedded into the prompt.
// It is configuration data, not logic, and is loaded from a data file.
type KnowledgeBase struct {
	WorkCenters []WorkCenter `json:"work_centers"`
	Rules       []string     `json:"rules"`
	Examples    []Example    `json:"examples"`
}

// LoadKnowledge reads and validates a knowledge base. An empty path loads
// the embedded default.
func LoadKnowledge(path string) (*KnowledgeBase, error) {
	raw := defaultKnowledge
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read knowledge file: %w", err)
		}
		raw = b
	}
	if err := ValidateJSONAgainstSchema(buildKnowledgeSchema(), raw); err != nil {
		return nil, fmt.Errorf("knowledge base invalid: %w", err)
	}
	var kb KnowledgeBase
	if err := json.Unmarshal(raw, &kb); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	return &kb, nil
}

// buildKnowledgeSchema returns the JSON-Schema (draft 2020-12 subset) the
// knowledge file must satisfy.
func buildKnowledgeSchema() map[string]any {
	workCenter := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"code":                  map[string]any{"type": "string", "minLength": 1},
			"name":                  map[string]any{"type": "string", "minLength": 1},
			"setup_hours":           map[string]any{"type": "string", "minLength": 1},
			"move_hours":            map[string]any{"type": "string"},
			"run_minutes_per_piece": map[string]any{"type": "string"},
			"instruction":           map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"code", "name", "setup_hours", "instruction"},
	}
	example := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"part":        map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string"},
			"quantity":    map[string]any{"type": "integer", "minimum": 1},
			"operations":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1},
		},
		"required": []string{"part", "quantity", "operations"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"work_centers": map[string]any{"type": "array", "items": workCenter, "minItems": 1},
			"rules":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"examples":     map[string]any{"type": "array", "items": example},
		},
		"required": []string{"work_centers"},
	}
}
