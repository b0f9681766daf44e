package knowledge

import (
	"strings"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// categoryKeywords maps each taxonomy category to its indicator keywords.
// Filename matching walks the taxonomy in declaration order, so an earlier
// category wins a tie.
var categoryKeywords = map[types.DocumentCategory][]string{
	types.CategoryContract:       {"contract", "agreement", "terms", "conditions", "jct", "nec"},
	types.CategoryDrawings:       {"drawing", "plan", "elevation", "section", "detail", "dwg"},
	types.CategorySpecifications: {"specification", "spec", "technical", "standard", "requirement"},
	types.CategorySchedule:       {"schedule", "programme", "timeline", "dates", "milestones"},
	types.CategoryPricing:        {"pricing", "rates", "cost", "estimate", "budget", "bill of quantities", "boq"},
	types.CategoryHealthSafety:   {"health", "safety", "cdm", "risk assessment", "method statement"},
	types.CategoryEnvironmental:  {"environmental", "sustainability", "breeam", "carbon", "energy"},
	types.CategoryTenderDocs:     {"tender", "invitation", "itt", "itq", "rfq", "proposal"},
	types.CategoryStructural:     {"structural", "foundation", "concrete", "steel", "load"},
	types.CategoryMEP:            {"mechanical", "electrical", "plumbing", "hvac", "services", "m&e"},
	types.CategoryPlanning:       {"planning", "permission", "consent", "application", "approved"},
	types.CategorySurveys:        {"survey", "investigation", "report", "assessment", "condition"},
	types.CategoryCorrespondence: {"email", "letter", "memo", "correspondence", "meeting"},
}

// Categorizer assigns documents to the fixed category taxonomy based on
// filename and content keyword signals.
type Categorizer struct {
	keywords map[types.DocumentCategory][]string
}

func NewCategorizer() *Categorizer {
	keywords := make(map[types.DocumentCategory][]string, len(categoryKeywords))
	for cat, kws := range categoryKeywords {
		keywords[cat] = append([]string(nil), kws...)
	}
	return &Categorizer{keywords: keywords}
}

// Extend adds deployment-specific keywords to existing categories. The
// taxonomy itself is closed: keywords for an unknown category are ignored.
func (c *Categorizer) Extend(extra map[types.DocumentCategory][]string) {
	for cat, kws := range extra {
		if _, known := c.keywords[cat]; !known {
			continue
		}
		c.keywords[cat] = append(c.keywords[cat], kws...)
	}
}

// Categorize picks a category for a document. The filename is checked
// first: the first category in taxonomy order with a keyword contained in
// the lowercased filename wins. If the filename gives no signal, the
// content is checked, and a category is selected only when at least two
// distinct keywords occur in it. Everything else is OTHER.
func (c *Categorizer) Categorize(filename, content string) types.DocumentCategory {
	filenameLower := strings.ToLower(filename)
	for _, cat := range types.AllDocumentCategories() {
		for _, kw := range c.keywords[cat] {
			if strings.Contains(filenameLower, kw) {
				return cat
			}
		}
	}

	contentLower := strings.ToLower(content)
	for _, cat := range types.AllDocumentCategories() {
		distinct := 0
		for _, kw := range c.keywords[cat] {
			if strings.Contains(contentLower, kw) {
				distinct++
				if distinct >= 2 {
					return cat
				}
			}
		}
	}

	return types.CategoryOther
}
