package fusion

import "github.com/abhisek/skillcoach/internal/store"

// Priority is the actionability tier derived from a skill gap.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Classified is a skill state enriched with its gap and priority.
type Classified struct {
	store.SkillState
	Gap      int
	Priority Priority
}

// Classify derives the numeric gap and priority tier from a skill state.
// The gap keeps its sign: a negative gap means the target has been
// exceeded, and downstream sorting relies on the signed value.
func Classify(state store.SkillState) Classified {
	gap := state.TargetLevel - state.CurrentLevel

	var priority Priority
	switch {
	case gap >= 3:
		priority = PriorityHigh
	case gap == 2:
		priority = PriorityMedium
	default:
		priority = PriorityLow
	}

	return Classified{SkillState: state, Gap: gap, Priority: priority}
}
