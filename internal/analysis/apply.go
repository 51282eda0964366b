package analysis

import (
	"context"
	"fmt"

	"github.com/abhisek/skillcoach/internal/skills"
	"github.com/abhisek/skillcoach/internal/store"
)

// Derived-skill dampening: a skill inferred from a reported gap is recorded
// one level below the primary estimate at 80% of its confidence.
const gapConfidenceFactor = 0.8

// Service applies analysis results to the skill state store.
type Service struct {
	states store.StateRepo
}

// NewService creates an analysis application service.
func NewService(states store.StateRepo) *Service {
	return &Service{states: states}
}

// Apply upserts skill states from one analysis: the primary language skill
// at the estimated level and confidence, then one state per reported gap
// that maps to a canonical skill. Gaps that match no canonical skill are
// silently discarded so free-text diagnostics never become skill names.
func (s *Service) Apply(ctx context.Context, userID string, a *ParsedAnalysis) error {
	primary := skills.Normalize(a.Language)
	confidence := a.ConfidenceScore / 100

	if err := s.states.Upsert(ctx, userID, primary, a.EstimatedLevel, confidence); err != nil {
		return fmt.Errorf("apply primary skill state: %w", err)
	}

	gapLevel := a.EstimatedLevel - 1
	if gapLevel < MinLevel {
		gapLevel = MinLevel
	}
	gapConfidence := confidence * gapConfidenceFactor

	for _, gap := range a.SkillGaps {
		skill, ok := skills.GapToSkill(gap)
		if !ok {
			continue
		}
		if err := s.states.Upsert(ctx, userID, skill, gapLevel, gapConfidence); err != nil {
			return fmt.Errorf("apply gap skill state %q: %w", skill, err)
		}
	}

	return nil
}
