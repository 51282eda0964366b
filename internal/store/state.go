package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type stateRepo struct {
	db *sql.DB
}

func (r *stateRepo) Upsert(ctx context.Context, userID, skill string, estimatedLevel int, confidence float64) error {
	// target_level lives only in the VALUES clause: the DO UPDATE branch
	// never touches it, so the first-ever value survives all later upserts.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO skill_states (user_id, skill, current_level, target_level, confidence_score, last_evaluated)
		VALUES (?, ?, ?, 5, ?, ?)
		ON CONFLICT(user_id, skill) DO UPDATE SET
			current_level    = excluded.current_level,
			confidence_score = excluded.confidence_score,
			last_evaluated   = excluded.last_evaluated`,
		userID, skill, estimatedLevel, confidence, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert skill state: %w", err)
	}
	return nil
}

func (r *stateRepo) List(ctx context.Context, userID string) ([]SkillState, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, skill, current_level, target_level, confidence_score, last_evaluated
		FROM skill_states
		WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list skill states: %w", err)
	}
	defer rows.Close()

	var states []SkillState
	for rows.Next() {
		var s SkillState
		var lastEvaluated int64
		if err := rows.Scan(&s.UserID, &s.Skill, &s.CurrentLevel, &s.TargetLevel,
			&s.ConfidenceScore, &lastEvaluated); err != nil {
			return nil, fmt.Errorf("scan skill state: %w", err)
		}
		s.LastEvaluated = time.Unix(lastEvaluated, 0)
		states = append(states, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skill states: %w", err)
	}
	return states, nil
}

var _ StateRepo = (*stateRepo)(nil)
var _ EventRepo = (*eventRepo)(nil)
