package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/skillcoach/internal/llm"
	"github.com/abhisek/skillcoach/internal/skills"
)

// AnalyzerConfig holds configuration for the LLM analyzer.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultAnalyzerConfig returns sensible defaults.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// Analyzer performs LLM-based code analysis.
type Analyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
}

// NewAnalyzer creates an LLM-based code analyzer.
func NewAnalyzer(provider llm.Provider, cfg AnalyzerConfig) *Analyzer {
	return &Analyzer{provider: provider, cfg: cfg}
}

// Analyze sends a code submission to the LLM and returns the coerced
// analysis. Missing or non-numeric confidence and level fields are coerced
// to safe defaults (0 and 2) rather than rejected: the result feeds a
// best-effort heuristic, not a safety-critical decision.
func (a *Analyzer) Analyze(ctx context.Context, language, code, diagnostics string) (*ParsedAnalysis, error) {
	ctx = llm.WithPurpose(ctx, "code-analysis")

	userMsg, err := buildAnalysisMessage(language, code, diagnostics)
	if err != nil {
		return nil, &AnalysisError{Stage: "generate", Err: err}
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      analysisSystemPrompt,
		Prompt:      userMsg,
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, &AnalysisError{Stage: "generate", Err: err}
	}

	parsed, err := parseAnalysis(resp.Content)
	if err != nil {
		return nil, &AnalysisError{Stage: "parse", Err: err}
	}

	parsed.Language = skills.Normalize(language)
	return parsed, nil
}

// parseAnalysis decodes raw model output into a ParsedAnalysis, recovering
// JSON wrapped in markdown fences or embedded in prose, and coercing the
// numeric fields.
func parseAnalysis(raw json.RawMessage) (*ParsedAnalysis, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		recovered, ok := recoverJSON(string(raw))
		if !ok {
			return nil, fmt.Errorf("response is not valid JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(recovered), &fields); err != nil {
			return nil, fmt.Errorf("recovered response is not valid JSON: %w", err)
		}
	}

	level := coerceInt(fields["estimated_level"], DefaultLevel)
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}

	return &ParsedAnalysis{
		Strengths:       coerceStrings(fields["strengths"]),
		SkillGaps:       coerceStrings(fields["skill_gaps"]),
		Suggestions:     coerceStrings(fields["suggestions"]),
		ConfidenceScore: coerceFloat(fields["confidence_score"], 0),
		EstimatedLevel:  level,
	}, nil
}

// recoverJSON extracts a JSON object from text that wraps it in markdown
// fences or surrounding prose.
func recoverJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func coerceFloat(v any, def float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f
		}
	}
	return def
}

func coerceInt(v any, def int) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return int(f)
		}
	}
	return def
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
