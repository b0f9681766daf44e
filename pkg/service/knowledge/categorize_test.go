package knowledge_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
)

func TestCategorize_Filename(t *testing.T) {
	c := knowledge.NewCategorizer()

	tests := []struct {
		name     string
		filename string
		want     types.DocumentCategory
	}{
		{"contract by keyword", "Main_Contract_JCT2016.pdf", types.CategoryContract},
		{"drawing extension hint", "GA-Plan-Level-02.dwg", types.CategoryDrawings},
		{"pricing bill", "Bill of Quantities Rev C.xlsx", types.CategoryPricing},
		{"health and safety", "CDM Pre-Construction Info.docx", types.CategoryHealthSafety},
		{"tender invitation", "ITT Volume 1.pdf", types.CategoryTenderDocs},
		{"case insensitive", "SCHEDULE-of-works.pdf", types.CategorySchedule},
		{"no signal", "zzz.pdf", types.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Categorize(tt.filename, "")
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestCategorize_ContentNeedsTwoKeywords(t *testing.T) {
	c := knowledge.NewCategorizer()

	// One keyword in content is not enough
	got := c.Categorize("doc1.pdf", "this mentions concrete once")
	gt.Value(t, got).Equal(types.CategoryOther)

	// Two distinct keywords select the category
	got = c.Categorize("doc2.pdf", "the concrete frame carries the steel beams")
	gt.Value(t, got).Equal(types.CategoryStructural)
}

func TestCategorize_FilenameBeatsContent(t *testing.T) {
	c := knowledge.NewCategorizer()

	// The filename names a contract even though the body reads structural
	got := c.Categorize("agreement.pdf", "concrete and steel and foundation everywhere")
	gt.Value(t, got).Equal(types.CategoryContract)
}

func TestCategorize_TaxonomyOrderBreaksTies(t *testing.T) {
	c := knowledge.NewCategorizer()

	// "specification" matches SPECIFICATIONS before any later category
	got := c.Categorize("specification_and_survey.pdf", "")
	gt.Value(t, got).Equal(types.CategorySpecifications)
}

func TestCategorizer_Extend(t *testing.T) {
	c := knowledge.NewCategorizer()
	c.Extend(map[types.DocumentCategory][]string{
		types.CategoryPricing: {"commercial pack"},
		"NOT_A_CATEGORY":      {"ignored"},
	})

	got := c.Categorize("Commercial Pack Rev A.pdf", "")
	gt.Value(t, got).Equal(types.CategoryPricing)

	// The unknown category's keywords must not create a new bucket
	got = c.Categorize("ignored.pdf", "")
	gt.Value(t, got).Equal(types.CategoryOther)
}
