package question_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/service/question"
)

func TestAnalyze_TenderDeadline(t *testing.T) {
	qc := question.Analyze("What is the tender deadline?")

	gt.Value(t, qc.Type).Equal(types.QuestionTemporal)
	gt.Value(t, qc.Complexity).Equal(types.ComplexitySimple)
	gt.Array(t, qc.RelevantCategories).Equal([]types.DocumentCategory{
		types.CategorySchedule,
		types.CategoryTenderDocs,
	})
	gt.Array(t, qc.SearchTerms).Equal([]string{"tender", "deadline"})
	gt.Bool(t, qc.RequiresCrossReference).True()
}

func TestAnalyze_QuestionType(t *testing.T) {
	tests := []struct {
		question string
		want     types.QuestionType
	}{
		{"How much is the performance bond?", types.QuestionFinancial},
		{"When does the defects period end?", types.QuestionTemporal},
		{"Where is the site compound located?", types.QuestionSpatial},
		{"How do we submit the bid bond?", types.QuestionProcedural},
		{"What does the employer require?", types.QuestionInformational},
		{"Summarise everything.", types.QuestionGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			qc := question.Analyze(tt.question)
			gt.Value(t, qc.Type).Equal(tt.want)
		})
	}
}

func TestAnalyze_Complexity(t *testing.T) {
	tests := []struct {
		question string
		want     types.Complexity
	}{
		{"What is the contract sum?", types.ComplexitySimple},
		{"Explain the retention mechanism.", types.ComplexityModerate},
		{"Compare the liquidated damages across sections.", types.ComplexityComplex},
		// The simpler tier wins even if a heavier indicator also appears
		{"What is the best tool to analyse settlement?", types.ComplexitySimple},
		{"Summarise the scope.", types.ComplexitySimple},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			qc := question.Analyze(tt.question)
			gt.Value(t, qc.Complexity).Equal(tt.want)
		})
	}
}

func TestAnalyze_NoCategorySignalUsesAll(t *testing.T) {
	qc := question.Analyze("Anything unusual here?")

	gt.Array(t, qc.RelevantCategories).Equal(types.AllDocumentCategories())
	gt.Bool(t, qc.RequiresCrossReference).True()
}

func TestAnalyze_SingleCategoryNoCrossReference(t *testing.T) {
	qc := question.Analyze("Does the hvac package include commissioning?")
	gt.Array(t, qc.RelevantCategories).Equal([]types.DocumentCategory{types.CategoryMEP})
	gt.Bool(t, qc.RequiresCrossReference).False()
}

func TestAnalyze_SearchTermsFilteredAndCapped(t *testing.T) {
	qc := question.Analyze("What is the retention percentage?")
	gt.Array(t, qc.SearchTerms).Equal([]string{"retention", "percentage"})

	long := "alpha bravo charlie delta echoes foxtrot golfing hotels indigo juliet kilos limas mikes"
	qc = question.Analyze(long)
	gt.Array(t, qc.SearchTerms).Length(10)
	gt.Value(t, qc.SearchTerms[0]).Equal("alpha")
}
