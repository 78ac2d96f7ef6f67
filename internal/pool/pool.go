package pool

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/validate"
)

// ErrDuplicateID is returned when a pool lists the same question id twice.
var ErrDuplicateID = errors.New("duplicate question id")

// Question is a read-only record from the content store. Content is
// carried through untouched.
type Question struct {
	ID         string           `json:"id"`
	Domain     string           `json:"domain"`
	Difficulty difficulty.Level `json:"difficulty"`
	Content    json.RawMessage  `json:"content,omitempty"`
}

// Parse decodes a JSON question pool.
func Parse(data []byte) ([]Question, error) {
	if err := validate.JSON(poolSchema, data); err != nil {
		return nil, err
	}

	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("unmarshal pool: %w", err)
	}

	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, q.ID)
		}
		seen[q.ID] = true
	}
	return qs, nil
}

// LoadFile reads and parses a question pool file.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}
	qs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse pool %s: %w", path, err)
	}
	return qs, nil
}

// Domains returns the distinct domains of qs in first-seen order.
func Domains(qs []Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range qs {
		if !seen[q.Domain] {
			seen[q.Domain] = true
			out = append(out, q.Domain)
		}
	}
	return out
}

var poolSchema = &validate.Schema{
	Name: "question-pool",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"id", "domain", "difficulty"},
			"properties": map[string]any{
				"id":         map[string]any{"type": "string", "minLength": 1},
				"domain":     map[string]any{"type": "string", "minLength": 1},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
		},
	},
}
