package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestUpsert_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	states := s.StateRepo()

	require.NoError(t, states.Upsert(ctx, "u1", "python", 3, 0.7))
	require.NoError(t, states.Upsert(ctx, "u1", "python", 3, 0.7))

	rows, err := states.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].CurrentLevel)
	assert.Equal(t, 0.7, rows[0].ConfidenceScore)
	assert.Equal(t, 5, rows[0].TargetLevel)
}

func TestUpsert_TargetLevelImmutable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	states := s.StateRepo()

	require.NoError(t, states.Upsert(ctx, "u1", "python", 2, 0.5))
	require.NoError(t, states.Upsert(ctx, "u1", "python", 4, 0.9))

	rows, err := states.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].CurrentLevel)
	assert.Equal(t, 0.9, rows[0].ConfidenceScore)
	assert.Equal(t, 5, rows[0].TargetLevel, "target_level must keep its first-insert value")
}

func TestList_ScopedToUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	states := s.StateRepo()

	require.NoError(t, states.Upsert(ctx, "u1", "python", 3, 0.5))
	require.NoError(t, states.Upsert(ctx, "u1", "loops", 2, 0.4))
	require.NoError(t, states.Upsert(ctx, "u2", "python", 5, 1.0))

	rows, err := states.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "u1", r.UserID)
	}
}

func TestAggregateBySkill(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	add := func(skill, eventType string, difficulty int, gap bool) {
		require.NoError(t, events.AppendPractice(ctx, PracticeEventData{
			UserID: "u1", Skill: skill, EventType: eventType,
			Difficulty: difficulty, Gap: gap,
		}))
	}

	add("python", "code_analysis", 2, false)
	add("python", "compile_error", 4, true)
	add("loops", "code_analysis", 3, false)
	// Events without a skill label must be excluded from the aggregate.
	add("", "file_save", 3, false)
	// Other users' events must not leak into the aggregate.
	require.NoError(t, events.AppendPractice(ctx, PracticeEventData{
		UserID: "u2", Skill: "python", EventType: "code_analysis", Difficulty: 5,
	}))

	groups, err := events.AggregateBySkill(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	bySkill := map[string]SkillGroup{}
	for _, g := range groups {
		bySkill[g.Skill] = g
	}

	py := bySkill["python"]
	assert.Equal(t, 2, py.Attempts)
	assert.Equal(t, 6.0, py.SumDifficulty)
	assert.Equal(t, 1, py.GapsDetected)
	assert.Equal(t, 3.0, py.AvgDifficulty())

	loops := bySkill["loops"]
	assert.Equal(t, 1, loops.Attempts)
	assert.Equal(t, 0, loops.GapsDetected)
}

func TestAggregateBySkill_NoEvents(t *testing.T) {
	s := openTestStore(t)

	groups, err := s.EventRepo().AggregateBySkill(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestLLMEventLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.EventRepo()

	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "code-analysis",
		InputTokens: 120, OutputTokens: 40, LatencyMs: 800, Success: true,
	}))
	require.NoError(t, events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "code-analysis",
		LatencyMs: 200, Success: false, ErrorMessage: "rate limited",
	}))

	list, err := events.QueryLLMEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first.
	assert.False(t, list[0].Success)
	assert.Equal(t, "rate limited", list[0].ErrorMessage)
	assert.True(t, list[1].Success)

	usage, err := events.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, "code-analysis", usage[0].Purpose)
	assert.Equal(t, 2, usage[0].Calls)
	assert.Equal(t, 120, usage[0].InputTokens)
	assert.Equal(t, 40, usage[0].OutputTokens)
}
