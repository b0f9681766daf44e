package question

import (
	"regexp"
	"strings"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// maxSearchTerms caps the terms handed to the retriever, which bounds
// prompt assembly cost downstream.
const maxSearchTerms = 10

// questionCategoryKeywords decides which knowledge base categories are
// relevant to a question. These are question-side keywords, not the
// document-side ones used for categorization.
var questionCategoryKeywords = map[types.DocumentCategory][]string{
	types.CategoryContract:       {"contract", "terms", "clause", "liability", "insurance", "legal"},
	types.CategoryDrawings:       {"drawing", "plan", "design", "layout", "detail", "section"},
	types.CategorySpecifications: {"spec", "technical", "material", "standard", "equipment", "method"},
	types.CategorySchedule:       {"schedule", "timeline", "date", "programme", "duration", "milestone", "completion", "deadline"},
	types.CategoryPricing:        {"cost", "price", "budget", "estimate", "value", "payment", "bid"},
	types.CategoryHealthSafety:   {"safety", "health", "risk", "hazard", "cdm", "welfare"},
	types.CategoryEnvironmental:  {"environmental", "sustainability", "carbon", "energy"},
	types.CategoryTenderDocs:     {"tender", "proposal", "submission", "invitation"},
	types.CategoryStructural:     {"structural", "foundation", "concrete", "steel"},
	types.CategoryMEP:            {"electrical", "mechanical", "plumbing", "hvac"},
	types.CategoryPlanning:       {"planning", "permission", "consent"},
	types.CategorySurveys:        {"survey", "condition", "investigation"},
}

// complexityTiers is ordered: the first tier with a matching indicator
// phrase wins, and questions matching nothing default to simple.
var complexityTiers = []struct {
	level      types.Complexity
	indicators []string
}{
	{types.ComplexitySimple, []string{"what is", "where", "when", "who"}},
	{types.ComplexityModerate, []string{"how", "why", "explain", "describe"}},
	{types.ComplexityComplex, []string{"analyze", "analyse", "compare", "evaluate", "assess", "recommend"}},
}

var stopWords = map[string]bool{
	"the": true, "is": true, "are": true, "what": true, "where": true,
	"when": true, "how": true, "why": true, "can": true, "will": true,
	"would": true, "should": true, "this": true, "that": true,
	"with": true, "from": true, "have": true, "does": true,
	"please": true, "about": true,
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Analyze classifies a free-text question into a complexity tier, a
// question-type tag, the relevant knowledge base categories and a bounded
// set of search terms.
func Analyze(q string) *model.QuestionContext {
	lower := strings.ToLower(q)

	var categories []types.DocumentCategory
	for _, cat := range types.AllDocumentCategories() {
		for _, kw := range questionCategoryKeywords[cat] {
			if strings.Contains(lower, kw) {
				categories = append(categories, cat)
				break
			}
		}
	}
	// No keyword signal: never starve the retriever of candidates
	if len(categories) == 0 {
		categories = types.AllDocumentCategories()
	}

	complexity := types.ComplexitySimple
	for _, tier := range complexityTiers {
		matched := false
		for _, ind := range tier.indicators {
			if strings.Contains(lower, ind) {
				matched = true
				break
			}
		}
		if matched {
			complexity = tier.level
			break
		}
	}

	return &model.QuestionContext{
		Question:               q,
		Complexity:             complexity,
		Type:                   classify(lower),
		RelevantCategories:     categories,
		SearchTerms:            extractTerms(lower),
		RequiresCrossReference: len(categories) > 1,
	}
}

// classify tags the question intent. Specific cues (money, time, place,
// process) are checked before the generic "what" so that "what is the
// tender deadline" lands on temporal rather than informational.
func classify(lower string) types.QuestionType {
	switch {
	case containsAny(lower, "how much", "how many", "cost", "price", "budget"):
		return types.QuestionFinancial
	case containsAny(lower, "when", "deadline", "schedule", "timeline", "date", "duration"):
		return types.QuestionTemporal
	case containsAny(lower, "where", "location", "site", "address"):
		return types.QuestionSpatial
	case containsAny(lower, "how ", "process", "procedure", "method", "steps"):
		return types.QuestionProcedural
	case containsAny(lower, "what", "define", "explain", "describe"):
		return types.QuestionInformational
	default:
		return types.QuestionGeneral
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func extractTerms(lower string) []string {
	var terms []string
	for _, word := range wordPattern.FindAllString(lower, -1) {
		if len(word) <= 3 || stopWords[word] {
			continue
		}
		terms = append(terms, word)
		if len(terms) == maxSearchTerms {
			break
		}
	}
	return terms
}
