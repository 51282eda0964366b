package fusion

import "github.com/abhisek/skillcoach/internal/mastery"

// Record is the fused, user-facing view of one skill.
type Record struct {
	Skill           string        `json:"skill"`
	CurrentLevel    int           `json:"current_level"`
	TargetLevel     int           `json:"target_level"`
	Gap             int           `json:"gap"`
	Priority        Priority      `json:"priority"`
	EventConfidence int           `json:"event_confidence"`
	StateConfidence float64       `json:"state_confidence"`
	FinalConfidence float64       `json:"final_confidence"`
	Mastery         mastery.Level `json:"mastery"`
	Recommendation  string        `json:"recommendation"`
}
