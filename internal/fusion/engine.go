// Package fusion combines state-derived and event-derived confidence into
// the final ranked skill profile.
package fusion

import (
	"context"
	"math"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/skillcoach/internal/insight"
	"github.com/abhisek/skillcoach/internal/mastery"
	"github.com/abhisek/skillcoach/internal/store"
)

// Fusion weights. The state confidence (slow-moving, LLM-assessed level) is
// weighted above raw event statistics, which are noisier and shorter-horizon.
const (
	stateWeight = 0.6
	eventWeight = 0.4
)

// neutralEventConfidence is assumed for skills with no event history.
const neutralEventConfidence = 50

const fallbackRecommendation = "Keep practicing"

// SummarySource provides event-derived per-skill summaries.
type SummarySource interface {
	Summarize(ctx context.Context, userID string) (map[string]insight.Summary, error)
}

// Engine produces the fused skill profile for a user.
type Engine struct {
	states    store.StateRepo
	summaries SummarySource
}

// NewEngine creates a fusion engine.
func NewEngine(states store.StateRepo, summaries SummarySource) *Engine {
	return &Engine{states: states, summaries: summaries}
}

// Fuse returns the user's complete skill profile, sorted by descending gap
// so the most actionable deficiency surfaces first. States whose skill
// label fails the validity filter are silently skipped. Any storage error
// aborts the whole call; there is no partial profile.
func (e *Engine) Fuse(ctx context.Context, userID string) ([]Record, error) {
	var (
		states  []store.SkillState
		summary map[string]insight.Summary
	)

	// The two reads are independent; run them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		states, err = e.states.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = e.summaries.Summarize(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(states))
	for _, state := range states {
		if !ValidSkillLabel(state.Skill) {
			continue
		}
		records = append(records, e.merge(Classify(state), summary))
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return b.Gap - a.Gap
	})

	return records, nil
}

// merge fuses one classified state with the event summary for its skill.
func (e *Engine) merge(c Classified, summary map[string]insight.Summary) Record {
	skill := strings.ToLower(c.Skill)

	eventConf := neutralEventConfidence
	recommendation := fallbackRecommendation
	if s, ok := summary[skill]; ok {
		eventConf = s.ConfidenceScore
		recommendation = s.Recommendation
	}

	// Convert the 1-5 level scale to the 0-100 scale used everywhere else.
	stateConf := round2(float64(c.CurrentLevel) / 5 * 100)
	finalConf := round2(stateWeight*stateConf + eventWeight*float64(eventConf))

	return Record{
		Skill:           skill,
		CurrentLevel:    c.CurrentLevel,
		TargetLevel:     c.TargetLevel,
		Gap:             c.Gap,
		Priority:        c.Priority,
		EventConfidence: eventConf,
		StateConfidence: stateConf,
		FinalConfidence: finalConf,
		Mastery:         mastery.Predict(finalConf),
		Recommendation:  recommendation,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
