package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendPractice(ctx context.Context, data PracticeEventData) error {
	id := data.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := data.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// Empty skill is stored as NULL so the aggregate's non-null filter
	// works at the SQL level.
	var skill any
	if data.Skill != "" {
		skill = data.Skill
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO practice_events (id, user_id, skill, event_type, difficulty, gap, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, data.UserID, skill, data.EventType, data.Difficulty,
		boolToInt(data.Gap), data.Message, createdAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("append practice event: %w", err)
	}
	return nil
}

func (r *eventRepo) AggregateBySkill(ctx context.Context, userID string) ([]SkillGroup, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT skill, COUNT(*), COALESCE(SUM(difficulty), 0), COALESCE(SUM(gap), 0)
		FROM practice_events
		WHERE user_id = ? AND skill IS NOT NULL AND skill != ''
		GROUP BY skill`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate events by skill: %w", err)
	}
	defer rows.Close()

	var groups []SkillGroup
	for rows.Next() {
		var g SkillGroup
		if err := rows.Scan(&g.Skill, &g.Attempts, &g.SumDifficulty, &g.GapsDetected); err != nil {
			return nil, fmt.Errorf("scan skill group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skill groups: %w", err)
	}
	return groups, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMRequestEvent, error) {
	q := `
		SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, COALESCE(error_message, '')
		FROM llm_events
		ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMRequestEvent
	for rows.Next() {
		var e LLMRequestEvent
		var createdAt int64
		var success int
		if err := rows.Scan(&e.ID, &createdAt, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		e.Timestamp = time.Unix(createdAt, 0)
		e.Success = success != 0
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0), COALESCE(AVG(latency_ms), 0)
		FROM llm_events
		GROUP BY purpose
		ORDER BY purpose`,
	)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var usage []LLMUsage
	for rows.Next() {
		var u LLMUsage
		var avgLatency float64
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &avgLatency); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		u.AvgLatencyMs = int64(avgLatency)
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm usage: %w", err)
	}
	return usage, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
