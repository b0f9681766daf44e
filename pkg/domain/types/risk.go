package types

import "strings"

// RiskLevel is the overall risk rating persisted on a tender analysis.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ParseRiskLevel normalizes a raw risk string. "CRITICAL" collapses into
// HIGH since the persisted schema has no critical tier; unknown values map
// to MEDIUM.
func ParseRiskLevel(s string) RiskLevel {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "LOW"):
		return RiskLow
	case strings.Contains(upper, "HIGH"), strings.Contains(upper, "CRITICAL"):
		return RiskHigh
	default:
		return RiskMedium
	}
}

func (r RiskLevel) String() string {
	return string(r)
}
