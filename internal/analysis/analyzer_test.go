package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skillcoach/internal/llm"
)

func TestAnalyze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"strengths": ["clear naming"],
			"skill_gaps": ["loop structure needs work"],
			"suggestions": ["use range"],
			"confidence_score": 85,
			"estimated_level": 3
		}`),
	})
	analyzer := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got, err := analyzer.Analyze(context.Background(), "py", "for i in range(10): pass", "")
	require.NoError(t, err)

	assert.Equal(t, "python", got.Language)
	assert.Equal(t, []string{"clear naming"}, got.Strengths)
	assert.Equal(t, []string{"loop structure needs work"}, got.SkillGaps)
	assert.Equal(t, []string{"use range"}, got.Suggestions)
	assert.Equal(t, 85.0, got.ConfidenceScore)
	assert.Equal(t, 3, got.EstimatedLevel)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.NotEmpty(t, req.System)
	assert.Contains(t, req.Prompt, "for i in range(10): pass")
	assert.NotNil(t, req.Schema)
}

func TestAnalyze_RecoversFencedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("```json\n{\"confidence_score\": 60, \"estimated_level\": 4}\n```"),
	})
	analyzer := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got, err := analyzer.Analyze(context.Background(), "go", "package main", "")
	require.NoError(t, err)
	assert.Equal(t, 60.0, got.ConfidenceScore)
	assert.Equal(t, 4, got.EstimatedLevel)
}

func TestAnalyze_RecoversJSONInProse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`Here is the analysis: {"confidence_score": 40, "estimated_level": 1} hope it helps`),
	})
	analyzer := NewAnalyzer(mock, DefaultAnalyzerConfig())

	got, err := analyzer.Analyze(context.Background(), "python", "x = 1", "")
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.ConfidenceScore)
	assert.Equal(t, 1, got.EstimatedLevel)
}

func TestAnalyze_ProviderError(t *testing.T) {
	wantErr := errors.New("timeout")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	analyzer := NewAnalyzer(mock, DefaultAnalyzerConfig())

	_, err := analyzer.Analyze(context.Background(), "python", "x = 1", "")
	require.Error(t, err)

	var aerr *AnalysisError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "generate", aerr.Stage)
	assert.ErrorIs(t, err, wantErr)
}

func TestAnalyze_UnparseableResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I cannot analyze this code.`),
	})
	analyzer := NewAnalyzer(mock, DefaultAnalyzerConfig())

	_, err := analyzer.Analyze(context.Background(), "python", "x = 1", "")
	require.Error(t, err)

	var aerr *AnalysisError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "parse", aerr.Stage)
}

func TestParseAnalysis_Coercion(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantConfidence float64
		wantLevel      int
	}{
		{"missing fields", `{}`, 0, DefaultLevel},
		{"string numbers", `{"confidence_score": "72.5", "estimated_level": "4"}`, 72.5, 4},
		{"non-numeric", `{"confidence_score": true, "estimated_level": []}`, 0, DefaultLevel},
		{"level clamped low", `{"estimated_level": 0}`, 0, MinLevel},
		{"level clamped high", `{"estimated_level": 9}`, 0, MaxLevel},
		{"float level truncated", `{"estimated_level": 3.9}`, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnalysis(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.wantConfidence, got.ConfidenceScore)
			assert.Equal(t, tt.wantLevel, got.EstimatedLevel)
		})
	}
}

func TestParseAnalysis_DropsNonStringListItems(t *testing.T) {
	got, err := parseAnalysis(json.RawMessage(`{"strengths": ["a", 1, "b", null]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Strengths)
}
