// Package analysis is the boundary to the upstream code-analysis LLM. It
// turns raw model output into an explicit ParsedAnalysis so that downstream
// fusion logic never has to guess whether a field is real or a filled-in
// default, and applies analysis results to the skill state store.
package analysis

import "fmt"

// Level bounds for estimated skill levels.
const (
	MinLevel = 1
	MaxLevel = 5
)

// DefaultLevel is assumed when the model omits or mangles estimated_level.
const DefaultLevel = 2

// ParsedAnalysis is the coerced result of one code analysis. Confidence is
// on the 0-100 scale; EstimatedLevel on the 1-5 scale.
type ParsedAnalysis struct {
	Language        string   `json:"language"`
	Strengths       []string `json:"strengths"`
	SkillGaps       []string `json:"skill_gaps"`
	Suggestions     []string `json:"suggestions"`
	ConfidenceScore float64  `json:"confidence_score"`
	EstimatedLevel  int      `json:"estimated_level"`
}

// AnalysisError wraps failures at the analysis boundary.
type AnalysisError struct {
	Stage string // "generate", "parse"
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("code analysis %s: %v", e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
