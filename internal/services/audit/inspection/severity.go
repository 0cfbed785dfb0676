package inspection

import "strconv"

// Severity derives the urgency weight for a normalized score: 0 for unset or
// "N/A", otherwise 10-score. Higher severity means higher urgency; this is
// the sole ranking signal for auto-prioritization.
func Severity(score string) int {
	if score == "" || score == "N/A" {
		return 0
	}
	parsed, err := strconv.Atoi(score)
	if err != nil || parsed < 1 || parsed > 9 {
		return 0
	}
	return 10 - parsed
}
