package model

import (
	"regexp"
	"strconv"
	"time"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// TenderAnalysis is the persisted analysis record of a project's tender
// documents. Every field is always populated: the mapper supplies a
// deterministic default for anything the generative model omits.
type TenderAnalysis struct {
	ID        types.AnalysisID
	ProjectID types.ProjectID

	ProjectOverview         string
	ScopeOfWork             string
	KeyRequirements         []string
	TechnicalSpecifications string
	RiskAssessment          string
	RiskLevel               types.RiskLevel
	TimelineAnalysis        string
	BudgetEstimates         string
	ContractInformation     map[string]string
	ContractType            string
	AnalysisConfidence      float64
	EstimatedProjectValue   float64
	ProjectDurationWeeks    int
	KeyOpportunities        []string
	DocumentsAnalyzed       []string
	ClarificationQuestions  []ClarificationQuestion

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClarificationQuestion flags a gap in the analysis that the client must
// resolve before pricing. These are advisory notes on the analysis record;
// the formal RFI set is generated separately.
type ClarificationQuestion struct {
	Category  types.RFICategory
	Question  string
	Priority  types.RFIPriority
	Reference string
}

// AnalysisResult is the untyped bag of values the generative model returns
// for a tender analysis. Model output is duck-typed: a field may be a
// string, a list, a number, or missing entirely. The accessors perform the
// coercion so the mapper never touches raw any values.
type AnalysisResult map[string]any

var firstIntPattern = regexp.MustCompile(`\d+`)

// String returns the value under key as a string, or "" when absent or not
// string-shaped.
func (r AnalysisResult) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

// StringList returns the value under key as a list of strings. A scalar
// string becomes a single-element list; anything else is dropped.
func (r AnalysisResult) StringList(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Map returns the value under key as a string map, flattening scalar
// values to their string form.
func (r AnalysisResult) Map(key string) map[string]string {
	raw, ok := r[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case int:
			out[k] = strconv.Itoa(val)
		case bool:
			out[k] = strconv.FormatBool(val)
		}
	}
	return out
}

// Float returns the value under key as a float64 with ok reporting whether
// a numeric value was present.
func (r AnalysisResult) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// Int returns the value under key coerced to an integer. String values are
// scanned for their first integer run ("approx. 26 weeks" yields 26).
// Returns def when no integer can be recovered.
func (r AnalysisResult) Int(key string, def int) int {
	switch v := r[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if m := firstIntPattern.FindString(v); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				return n
			}
		}
		return def
	default:
		return def
	}
}
