package types

import "github.com/m-mizutani/goerr/v2"

// DocumentCategory is a closed taxonomy label assigned to every tender
// document during knowledge base construction.
type DocumentCategory string

const (
	CategoryContract       DocumentCategory = "CONTRACT"
	CategoryDrawings       DocumentCategory = "DRAWINGS"
	CategorySpecifications DocumentCategory = "SPECIFICATIONS"
	CategorySchedule       DocumentCategory = "SCHEDULE"
	CategoryPricing        DocumentCategory = "PRICING"
	CategoryHealthSafety   DocumentCategory = "HEALTH_SAFETY"
	CategoryEnvironmental  DocumentCategory = "ENVIRONMENTAL"
	CategoryTenderDocs     DocumentCategory = "TENDER_DOCS"
	CategoryStructural     DocumentCategory = "STRUCTURAL"
	CategoryMEP            DocumentCategory = "MEP"
	CategoryPlanning       DocumentCategory = "PLANNING"
	CategorySurveys        DocumentCategory = "SURVEYS"
	CategoryCorrespondence DocumentCategory = "CORRESPONDENCE"
	CategoryOther          DocumentCategory = "OTHER"
)

// AllDocumentCategories lists the taxonomy in declaration order. The order
// matters: categorization ties are resolved by the first declared match.
func AllDocumentCategories() []DocumentCategory {
	return []DocumentCategory{
		CategoryContract,
		CategoryDrawings,
		CategorySpecifications,
		CategorySchedule,
		CategoryPricing,
		CategoryHealthSafety,
		CategoryEnvironmental,
		CategoryTenderDocs,
		CategoryStructural,
		CategoryMEP,
		CategoryPlanning,
		CategorySurveys,
		CategoryCorrespondence,
	}
}

// Validate checks if the DocumentCategory is a known taxonomy label
func (c DocumentCategory) Validate() error {
	if c == CategoryOther {
		return nil
	}
	for _, known := range AllDocumentCategories() {
		if c == known {
			return nil
		}
	}
	return goerr.New("unknown document category", goerr.V("category", c))
}

func (c DocumentCategory) String() string {
	return string(c)
}
