// Package insight aggregates a user's practice events into per-skill
// confidence summaries. Summaries are a pure projection of the event
// collection, recomputed on every request and never cached.
package insight

import (
	"context"
	"math"

	"github.com/abhisek/skillcoach/internal/skills"
	"github.com/abhisek/skillcoach/internal/store"
)

// Summary is the derived per-skill aggregate.
type Summary struct {
	Attempts        int     `json:"attempts"`
	AvgDifficulty   float64 `json:"avg_difficulty"`
	GapsDetected    int     `json:"gaps_detected"`
	ConfidenceScore int     `json:"confidence_score"`
	Recommendation  string  `json:"recommendation"`
}

// Service computes event-derived skill summaries.
type Service struct {
	events store.EventRepo
}

// NewService creates an insight service backed by the given event repo.
func NewService(events store.EventRepo) *Service {
	return &Service{events: events}
}

// Summarize groups all of a user's practice events by canonical skill and
// computes attempts, average difficulty, detected gaps, a confidence score
// and a recommendation per skill. Groups whose raw labels normalize to the
// same canonical skill are merged before the confidence formula runs.
// Events without a skill label are excluded entirely.
func (s *Service) Summarize(ctx context.Context, userID string) (map[string]Summary, error) {
	groups, err := s.events.AggregateBySkill(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]store.SkillGroup)
	for _, g := range groups {
		if g.Skill == "" {
			continue
		}
		key := skills.Normalize(g.Skill)
		m := merged[key]
		m.Skill = key
		m.Attempts += g.Attempts
		m.SumDifficulty += g.SumDifficulty
		m.GapsDetected += g.GapsDetected
		merged[key] = m
	}

	summary := make(map[string]Summary, len(merged))
	for key, g := range merged {
		avg := g.AvgDifficulty()
		confidence := Confidence(g.Attempts, avg, g.GapsDetected)

		summary[key] = Summary{
			Attempts:        g.Attempts,
			AvgDifficulty:   math.Round(avg*100) / 100,
			GapsDetected:    g.GapsDetected,
			ConfidenceScore: confidence,
			Recommendation:  Recommendation(confidence),
		}
	}

	return summary, nil
}
