package common

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"raidcrew/raidtracker/internal/constants"
)

// RoundedPercent returns part/total as a whole percentage, rounding half up, and 0 for an
// empty total.
func RoundedPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(part)*100/float64(total) + 0.5))
}

// Rate is RoundedPercent without the rounding, for reports.
func Rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

// AvatarURL is the generated avatar for seed.
func AvatarURL(seed string) string {
	return constants.AvatarBaseURL + url.QueryEscape(seed)
}

// MeetsKPI applies the fixed impression threshold.
func MeetsKPI(impressions int) bool {
	return impressions >= constants.KPIImpressionThreshold
}

// ParseLeadingInt reads the integer at the start of s, after surrounding space and an
// optional sign, and ignores whatever follows it: "1500abc" is 1500 and "12.5" is 12.
// It reports false when s does not start with a digit.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
