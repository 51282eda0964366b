package insight

// Confidence computes the event-derived confidence score for one skill
// group. More repeated gaps and higher average difficulty lower the score;
// more total attempts raise it. The heuristic is deliberately simple and
// monotonic; there is no training data for a learned model yet.
//
//	confidence = 100 - gaps*10 - avg_difficulty*5 + attempts*2
//
// The raw value is truncated to an integer and clamped to [0, 100].
func Confidence(attempts int, avgDifficulty float64, gapsDetected int) int {
	raw := 100 - float64(gapsDetected)*10 - avgDifficulty*5 + float64(attempts)*2

	c := int(raw)
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
