package store

import (
	"context"
	"time"
)

// PracticeEventData is a single practice event to append.
// Skill holds the canonical (already normalized) skill label; it may be
// empty when the source event carried no language information.
type PracticeEventData struct {
	ID         string
	UserID     string
	Skill      string
	EventType  string
	Difficulty int
	Gap        bool
	Message    string
	CreatedAt  time.Time
}

// SkillGroup is the per-skill aggregate over a user's practice events.
// SumDifficulty is a sum rather than an average so callers can merge groups
// whose raw labels normalize to the same canonical skill.
type SkillGroup struct {
	Skill         string
	Attempts      int
	SumDifficulty float64
	GapsDetected  int
}

// AvgDifficulty returns the mean difficulty for the group.
func (g SkillGroup) AvgDifficulty() float64 {
	if g.Attempts == 0 {
		return 0
	}
	return g.SumDifficulty / float64(g.Attempts)
}

// SkillState is the persisted (user, skill) proficiency record.
type SkillState struct {
	UserID          string
	Skill           string
	CurrentLevel    int
	TargetLevel     int
	ConfidenceScore float64 // 0.0 - 1.0
	LastEvaluated   time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request log row.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage is aggregated token usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and aggregate access to practice events,
// plus the LLM request log.
type EventRepo interface {
	// AppendPractice records a practice event. Events are immutable once
	// written; there is no update path.
	AppendPractice(ctx context.Context, data PracticeEventData) error

	// AggregateBySkill groups a user's practice events by skill label,
	// excluding rows with a null or empty skill.
	AggregateBySkill(ctx context.Context, userID string) ([]SkillGroup, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}

// StateRepo manages the authoritative (user, skill) proficiency records.
type StateRepo interface {
	// Upsert writes a skill state. The write is a single atomic
	// insert-or-update: current_level, confidence_score and last_evaluated
	// always take the new values, while target_level is set only when the
	// row is first created. Safe under concurrent calls for the same key;
	// last-writer-wins.
	Upsert(ctx context.Context, userID, skill string, estimatedLevel int, confidence float64) error

	// List returns all skill states for a user, in no particular order.
	List(ctx context.Context, userID string) ([]SkillState, error)
}
