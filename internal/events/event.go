// Package events is the ingestion boundary for practice events. Raw editor
// payloads are turned into a validated record exactly once here; downstream
// code never inspects loosely shaped payloads.
package events

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillcoach/internal/skills"
	"github.com/abhisek/skillcoach/internal/store"
)

// Event types reported by editor integrations.
const (
	TypeCodeAnalysis = "code_analysis"
	TypeCompileError = "compile_error"
	TypeRuntimeError = "runtime_error"
	TypeFileSave     = "file_save"
	TypeTestRun      = "test_run"
)

// Record is a validated, immutable practice event.
type Record struct {
	ID         string
	UserID     string
	Skill      string // canonical, may be empty
	EventType  string
	Difficulty int
	Gap        bool
	Message    string
	CreatedAt  time.Time
}

// New builds a Record from a raw editor payload. The skill label is
// normalized once here, and difficulty is assigned by the event-type
// heuristic: error events are harder and indicate a shortfall.
func New(userID, eventType, language, message string) (Record, error) {
	if userID == "" {
		return Record{}, fmt.Errorf("event requires a user id")
	}
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return Record{}, fmt.Errorf("event requires an event type")
	}

	difficulty := 3
	gap := false
	if eventType == TypeCompileError || eventType == TypeRuntimeError {
		difficulty = 4
		gap = true
	}

	skill := ""
	if language != "" {
		skill = skills.Normalize(language)
	}

	return Record{
		ID:         uuid.NewString(),
		UserID:     userID,
		Skill:      skill,
		EventType:  eventType,
		Difficulty: difficulty,
		Gap:        gap,
		Message:    message,
		CreatedAt:  time.Now(),
	}, nil
}

// Ingestor appends validated records to the event store.
type Ingestor struct {
	repo store.EventRepo
}

// NewIngestor creates an Ingestor backed by the given repo.
func NewIngestor(repo store.EventRepo) *Ingestor {
	return &Ingestor{repo: repo}
}

// Ingest validates and appends one event.
func (i *Ingestor) Ingest(ctx context.Context, userID, eventType, language, message string) (Record, error) {
	rec, err := New(userID, eventType, language, message)
	if err != nil {
		return Record{}, err
	}

	err = i.repo.AppendPractice(ctx, store.PracticeEventData{
		ID:         rec.ID,
		UserID:     rec.UserID,
		Skill:      rec.Skill,
		EventType:  rec.EventType,
		Difficulty: rec.Difficulty,
		Gap:        rec.Gap,
		Message:    rec.Message,
		CreatedAt:  rec.CreatedAt,
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}
