package insight

// Recommendation maps an event-derived confidence score to a coaching
// message via a fixed threshold ladder.
func Recommendation(confidence int) string {
	switch {
	case confidence >= 80:
		return "You are doing great. Start advanced challenges."
	case confidence >= 60:
		return "Practice intermediate problems regularly."
	case confidence >= 40:
		return "Revise fundamentals and fix detected gaps."
	default:
		return "Strong gaps detected. Follow a guided learning path."
	}
}
