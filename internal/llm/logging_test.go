package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/skillcoach/internal/store"
)

type recordingEventRepo struct {
	logged    []store.LLMRequestEventData
	appendErr error
}

func (r *recordingEventRepo) AppendPractice(ctx context.Context, data store.PracticeEventData) error {
	return nil
}

func (r *recordingEventRepo) AggregateBySkill(ctx context.Context, userID string) ([]store.SkillGroup, error) {
	return nil, nil
}

func (r *recordingEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.logged = append(r.logged, data)
	return nil
}

func (r *recordingEventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (r *recordingEventRepo) LLMUsageByPurpose(ctx context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 40},
	})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "code-analysis")
	_, err := p.Generate(ctx, Request{Prompt: "hi"})
	require.NoError(t, err)

	require.Len(t, repo.logged, 1)
	e := repo.logged[0]
	assert.Equal(t, "code-analysis", e.Purpose)
	assert.Equal(t, 120, e.InputTokens)
	assert.Equal(t, 40, e.OutputTokens)
	assert.True(t, e.Success)
	assert.Empty(t, e.ErrorMessage)
	assert.Equal(t, "mock", e.Model)
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)

	require.Len(t, repo.logged, 1)
	e := repo.logged[0]
	assert.False(t, e.Success)
	assert.Contains(t, e.ErrorMessage, "boom")
}

func TestLogging_AppendFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	repo := &recordingEventRepo{appendErr: errors.New("disk full")}
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestPurposeContext(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))

	ctx := WithPurpose(context.Background(), "code-analysis")
	assert.Equal(t, "code-analysis", PurposeFrom(ctx))
}

func TestNewProvider_Mock(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(ctx, cfg, &recordingEventRepo{})
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	_, err := NewProvider(context.Background(), cfg, &recordingEventRepo{})
	assert.Error(t, err)
}
