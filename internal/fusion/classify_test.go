package fusion

import (
	"testing"

	"github.com/abhisek/skillcoach/internal/store"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		target       int
		wantGap      int
		wantPriority Priority
	}{
		{"wide gap", 1, 5, 4, PriorityHigh},
		{"threshold high", 2, 5, 3, PriorityHigh},
		{"medium", 3, 5, 2, PriorityMedium},
		{"narrow", 4, 5, 1, PriorityLow},
		{"met", 5, 5, 0, PriorityLow},
		{"exceeded keeps sign", 5, 3, -2, PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(store.SkillState{
				Skill:        "python",
				CurrentLevel: tt.current,
				TargetLevel:  tt.target,
			})
			if c.Gap != tt.wantGap {
				t.Errorf("gap = %d, want %d", c.Gap, tt.wantGap)
			}
			if c.Priority != tt.wantPriority {
				t.Errorf("priority = %s, want %s", c.Priority, tt.wantPriority)
			}
		})
	}
}
