package types

import "strings"

// RFICategory classifies a clarification request raised against a tender
// analysis. The taxonomy is closed; anything unrecognized from the
// generative model is normalized to RFICategoryTechnical.
type RFICategory string

const (
	RFICategoryTechnical     RFICategory = "TECHNICAL"
	RFICategoryCommercial    RFICategory = "COMMERCIAL"
	RFICategoryProgramme     RFICategory = "PROGRAMME"
	RFICategorySpecification RFICategory = "SPECIFICATION"
	RFICategoryDrawing       RFICategory = "DRAWING"
	RFICategoryHealthSafety  RFICategory = "HEALTH_SAFETY"
	RFICategoryEnvironmental RFICategory = "ENVIRONMENTAL"
	RFICategoryQuality       RFICategory = "QUALITY"
	RFICategoryScope         RFICategory = "SCOPE"
	RFICategoryAccess        RFICategory = "ACCESS"
	RFICategoryCoordination  RFICategory = "COORDINATION"
	RFICategoryExclusions    RFICategory = "EXCLUSIONS"
)

// ParseRFICategory normalizes a raw category string against the taxonomy.
// "PROGRAM" is accepted as an alias for "PROGRAMME"; unknown values map to
// TECHNICAL so a loosely formatted model response never produces an invalid
// record.
func ParseRFICategory(s string) RFICategory {
	switch RFICategory(strings.ToUpper(strings.TrimSpace(s))) {
	case RFICategoryTechnical, RFICategoryCommercial, RFICategoryProgramme,
		RFICategorySpecification, RFICategoryDrawing, RFICategoryHealthSafety,
		RFICategoryEnvironmental, RFICategoryQuality, RFICategoryScope,
		RFICategoryAccess, RFICategoryCoordination, RFICategoryExclusions:
		return RFICategory(strings.ToUpper(strings.TrimSpace(s)))
	case "PROGRAM":
		return RFICategoryProgramme
	default:
		return RFICategoryTechnical
	}
}

func (c RFICategory) String() string {
	return string(c)
}

// RFIPriority ranks how urgently a clarification must be answered before a
// bid can be priced.
type RFIPriority string

const (
	RFIPriorityCritical RFIPriority = "CRITICAL"
	RFIPriorityHigh     RFIPriority = "HIGH"
	RFIPriorityMedium   RFIPriority = "MEDIUM"
	RFIPriorityLow      RFIPriority = "LOW"
)

// ParseRFIPriority normalizes a raw priority string; unknown values map to
// MEDIUM.
func ParseRFIPriority(s string) RFIPriority {
	switch RFIPriority(strings.ToUpper(strings.TrimSpace(s))) {
	case RFIPriorityCritical, RFIPriorityHigh, RFIPriorityMedium, RFIPriorityLow:
		return RFIPriority(strings.ToUpper(strings.TrimSpace(s)))
	default:
		return RFIPriorityMedium
	}
}

// Rank returns the sort weight of the priority, lowest value first.
func (p RFIPriority) Rank() int {
	switch p {
	case RFIPriorityCritical:
		return 0
	case RFIPriorityHigh:
		return 1
	case RFIPriorityMedium:
		return 2
	default:
		return 3
	}
}

func (p RFIPriority) String() string {
	return string(p)
}

// RFIStatus tracks the lifecycle of a raised RFI.
type RFIStatus string

const (
	RFIStatusPending  RFIStatus = "PENDING"
	RFIStatusAnswered RFIStatus = "ANSWERED"
	RFIStatusClosed   RFIStatus = "CLOSED"
)

func (s RFIStatus) String() string {
	return string(s)
}

// PricingImpact estimates how strongly an unresolved RFI distorts pricing.
type PricingImpact string

const (
	PricingImpactHigh   PricingImpact = "HIGH"
	PricingImpactMedium PricingImpact = "MEDIUM"
	PricingImpactLow    PricingImpact = "LOW"
)

// ParsePricingImpact normalizes a raw impact string; unknown values map to
// MEDIUM.
func ParsePricingImpact(s string) PricingImpact {
	switch PricingImpact(strings.ToUpper(strings.TrimSpace(s))) {
	case PricingImpactHigh, PricingImpactMedium, PricingImpactLow:
		return PricingImpact(strings.ToUpper(strings.TrimSpace(s)))
	default:
		return PricingImpactMedium
	}
}

func (p PricingImpact) String() string {
	return string(p)
}
