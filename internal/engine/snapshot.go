package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/mod/semver"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/performance"
	"github.com/abhisek/examprep/internal/spacedrep"
	"github.com/abhisek/examprep/internal/validate"
)

// FormatVersion is the snapshot layout written by Marshal. Snapshots
// with a different major version are not read.
const FormatVersion = "v1.0.0"

// ErrIncompatibleFormat is returned by Unmarshal for snapshots written
// with an unsupported format major version.
var ErrIncompatibleFormat = errors.New("incompatible snapshot format")

// pair is one map entry. Maps are stored as sorted key/value lists so the
// encoding is deterministic and keeps map semantics explicit.
type pair[V any] struct {
	Key   string `json:"key"`
	Value V      `json:"value"`
}

type snapshotDoc struct {
	Format               string                                 `json:"format"`
	Exam                 string                                 `json:"exam"`
	CurrentDifficulty    difficulty.Level                       `json:"current_difficulty"`
	TargetAccuracy       float64                                `json:"target_accuracy"`
	RecentResults        []bool                                 `json:"recent_results"`
	DomainPerformance    []pair[performance.DomainPerformance] `json:"domain_performance"`
	QuestionHistory      []pair[spacedrep.HistoryEntry]         `json:"question_history"`
	LastSessionQuestions []string                               `json:"last_session_questions"`
}

// Marshal encodes s as a snapshot document.
func Marshal(s State) ([]byte, error) {
	doc := snapshotDoc{
		Format:               FormatVersion,
		Exam:                 s.Exam,
		CurrentDifficulty:    s.CurrentDifficulty,
		TargetAccuracy:       s.TargetAccuracy,
		RecentResults:        append([]bool{}, s.RecentResults...),
		DomainPerformance:    toPairs(s.DomainPerformance),
		QuestionHistory:      toPairs(s.QuestionHistory),
		LastSessionQuestions: append([]string{}, s.LastSessionQuestions...),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and checks a snapshot document.
func Unmarshal(data []byte) (State, error) {
	if err := validate.JSON(snapshotSchema, data); err != nil {
		return State{}, err
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if !semver.IsValid(doc.Format) || semver.Major(doc.Format) != semver.Major(FormatVersion) {
		return State{}, fmt.Errorf("%w: %q", ErrIncompatibleFormat, doc.Format)
	}

	s := State{
		Exam:                 doc.Exam,
		CurrentDifficulty:    doc.CurrentDifficulty,
		TargetAccuracy:       doc.TargetAccuracy,
		RecentResults:        doc.RecentResults,
		DomainPerformance:    make(map[string]performance.DomainPerformance, len(doc.DomainPerformance)),
		QuestionHistory:      make(map[string]spacedrep.HistoryEntry, len(doc.QuestionHistory)),
		LastSessionQuestions: doc.LastSessionQuestions,
	}
	if s.TargetAccuracy == 0 {
		s.TargetAccuracy = DefaultTargetAccuracy
	}

	for _, p := range doc.DomainPerformance {
		if _, dup := s.DomainPerformance[p.Key]; dup {
			return State{}, fmt.Errorf("duplicate domain %q in snapshot", p.Key)
		}
		if p.Value.Correct > p.Value.Attempted {
			return State{}, fmt.Errorf("domain %q: %d correct of %d attempted", p.Key, p.Value.Correct, p.Value.Attempted)
		}
		p.Value.Domain = p.Key
		s.DomainPerformance[p.Key] = p.Value
	}
	for _, p := range doc.QuestionHistory {
		if _, dup := s.QuestionHistory[p.Key]; dup {
			return State{}, fmt.Errorf("duplicate question %q in snapshot", p.Key)
		}
		p.Value.QuestionID = p.Key
		s.QuestionHistory[p.Key] = p.Value
	}
	return s, nil
}

// Load returns the state stored in data for exam and whether the
// snapshot was used. It never fails: a missing, unreadable or foreign
// snapshot yields a fresh state, and the reason is logged. Blueprint
// domains added since the snapshot was written are filled in.
func Load(data []byte, exam string, logger *slog.Logger) (State, bool) {
	if logger == nil {
		logger = slog.Default()
	}
	bp := blueprint.For(exam)
	if len(data) == 0 {
		return NewState(bp), false
	}

	s, err := Unmarshal(data)
	if err != nil {
		logger.Warn("discarding unreadable snapshot", "exam", exam, "error", err)
		return NewState(bp), false
	}
	if s.Exam != exam {
		logger.Warn("discarding snapshot for another exam", "exam", exam, "snapshot_exam", s.Exam)
		return NewState(bp), false
	}

	for _, d := range bp.Domains() {
		if _, ok := s.DomainPerformance[d]; !ok {
			s.DomainPerformance[d] = performance.New(d)
		}
	}
	return s, true
}

func toPairs[V any](m map[string]V) []pair[V] {
	out := make([]pair[V], 0, len(m))
	for k, v := range m {
		out = append(out, pair[V]{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

var snapshotSchema = &validate.Schema{
	Name: "engine-snapshot",
	Definition: map[string]any{
		"type": "object",
		"required": []any{
			"format", "exam", "current_difficulty", "recent_results",
			"domain_performance", "question_history", "last_session_questions",
		},
		"properties": map[string]any{
			"format":             map[string]any{"type": "string", "minLength": 1},
			"exam":               map[string]any{"type": "string"},
			"current_difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"target_accuracy":    map[string]any{"type": "number", "minimum": 0, "maximum": 1},
			"recent_results": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "boolean"},
				"maxItems": RecentResultsSize,
			},
			"last_session_questions": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"maxItems": LastSessionSize,
			},
			"domain_performance": pairsSchema(map[string]any{
				"type":     "object",
				"required": []any{"attempted", "correct"},
				"properties": map[string]any{
					"attempted":       map[string]any{"type": "integer", "minimum": 0},
					"correct":         map[string]any{"type": "integer", "minimum": 0},
					"recent_accuracy": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				},
			}),
			"question_history": pairsSchema(map[string]any{
				"type":     "object",
				"required": []any{"attempts", "ease_factor", "interval", "next_review_date"},
				"properties": map[string]any{
					"domain":        map[string]any{"type": "string"},
					"attempts":      map[string]any{"type": "integer", "minimum": 1},
					"correct_count": map[string]any{"type": "integer", "minimum": 0},
					"ease_factor": map[string]any{
						"type":    "number",
						"minimum": spacedrep.MinEaseFactor,
						"maximum": spacedrep.MaxEaseFactor,
					},
					"interval":         map[string]any{"type": "number", "minimum": 0},
					"next_review_date": map[string]any{"type": "string", "minLength": 1},
				},
			}),
		},
	},
}

func pairsSchema(value map[string]any) map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"key", "value"},
			"properties": map[string]any{
				"key":   map[string]any{"type": "string", "minLength": 1},
				"value": value,
			},
		},
	}
}
