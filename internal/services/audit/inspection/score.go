package inspection

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeScore maps an arbitrary input to the closed score set
// {"", "N/A", "1".."9"}. It is a total function: nil and unparseable inputs
// become "", case-insensitive "n/a" becomes "N/A", finite numbers are rounded
// to the nearest integer and clamped to [1,9].
func NormalizeScore(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		return clampScore(v)
	case int:
		return clampScore(float64(v))
	case string:
		return normalizeScoreText(v)
	default:
		return ""
	}
}

func normalizeScoreText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if strings.EqualFold(text, "n/a") {
		return "N/A"
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return ""
	}
	return clampScore(parsed)
}

func clampScore(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}
	rounded := int(math.Round(value))
	if rounded < 1 {
		rounded = 1
	}
	if rounded > 9 {
		rounded = 9
	}
	return strconv.Itoa(rounded)
}
