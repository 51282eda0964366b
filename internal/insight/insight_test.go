package insight

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/skillcoach/internal/store"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name          string
		attempts      int
		avgDifficulty float64
		gaps          int
		want          int
	}{
		{"single clean attempt", 1, 2, 0, 92},
		{"clamps to zero", 0, 5, 100, 0},
		{"clamps to hundred", 50, 0, 0, 100},
		{"no events", 0, 0, 0, 100},
		{"truncates fraction", 1, 2.5, 0, 89}, // 100 - 12.5 + 2 = 89.5
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Confidence(tt.attempts, tt.avgDifficulty, tt.gaps); got != tt.want {
				t.Errorf("Confidence(%d, %v, %d) = %d, want %d",
					tt.attempts, tt.avgDifficulty, tt.gaps, got, tt.want)
			}
		})
	}
}

func TestRecommendation_Ladder(t *testing.T) {
	tests := []struct {
		confidence int
		want       string
	}{
		{100, "You are doing great. Start advanced challenges."},
		{80, "You are doing great. Start advanced challenges."},
		{79, "Practice intermediate problems regularly."},
		{60, "Practice intermediate problems regularly."},
		{59, "Revise fundamentals and fix detected gaps."},
		{40, "Revise fundamentals and fix detected gaps."},
		{39, "Strong gaps detected. Follow a guided learning path."},
		{0, "Strong gaps detected. Follow a guided learning path."},
	}

	for _, tt := range tests {
		if got := Recommendation(tt.confidence); got != tt.want {
			t.Errorf("Recommendation(%d) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

type stubEventRepo struct {
	store.EventRepo
	groups []store.SkillGroup
	err    error
}

func (s *stubEventRepo) AggregateBySkill(_ context.Context, _ string) ([]store.SkillGroup, error) {
	return s.groups, s.err
}

func TestSummarize(t *testing.T) {
	svc := NewService(&stubEventRepo{groups: []store.SkillGroup{
		{Skill: "python", Attempts: 3, SumDifficulty: 9, GapsDetected: 1},
	}})

	summary, err := svc.Summarize(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	s, ok := summary["python"]
	if !ok {
		t.Fatalf("missing python summary, got %v", summary)
	}
	// 100 - 10 - 15 + 6 = 81
	if s.ConfidenceScore != 81 {
		t.Errorf("ConfidenceScore = %d, want 81", s.ConfidenceScore)
	}
	if s.Attempts != 3 || s.AvgDifficulty != 3.0 || s.GapsDetected != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Recommendation != "You are doing great. Start advanced challenges." {
		t.Errorf("Recommendation = %q", s.Recommendation)
	}
}

func TestSummarize_MergesAliasGroups(t *testing.T) {
	// Events recorded before normalization was enforced may carry raw
	// labels; groups normalizing to the same skill must merge.
	svc := NewService(&stubEventRepo{groups: []store.SkillGroup{
		{Skill: "py", Attempts: 2, SumDifficulty: 6, GapsDetected: 1},
		{Skill: "Python", Attempts: 1, SumDifficulty: 4, GapsDetected: 0},
	}})

	summary, err := svc.Summarize(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	if len(summary) != 1 {
		t.Fatalf("got %d groups, want 1 merged: %v", len(summary), summary)
	}
	s := summary["python"]
	if s.Attempts != 3 || s.GapsDetected != 1 {
		t.Errorf("merged summary = %+v", s)
	}
	// avg = 10/3 ≈ 3.33
	if s.AvgDifficulty != 3.33 {
		t.Errorf("AvgDifficulty = %v, want 3.33", s.AvgDifficulty)
	}
}

func TestSummarize_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&stubEventRepo{err: boom})

	if _, err := svc.Summarize(context.Background(), "u1"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
