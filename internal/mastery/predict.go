// Package mastery maps fused confidence values to discrete mastery levels.
package mastery

// Level is a discrete mastery label.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Predict maps a 0-100 confidence value to a mastery level. The function is
// total: out-of-range inputs fall into the nearest bucket rather than
// producing an error.
func Predict(confidence float64) Level {
	switch {
	case confidence >= 80:
		return LevelHigh
	case confidence >= 50:
		return LevelMedium
	default:
		return LevelLow
	}
}
