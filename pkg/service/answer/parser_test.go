package answer_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/service/answer"
)

func TestParse_SectionedCompletion(t *testing.T) {
	completion := `DIRECT ANSWER:
The completion date is 14 March 2026 per the programme.

KEY FINDINGS:
- **Sectional completion** applies
- Retention applies at three percent

DOCUMENT REFERENCES:
1. Contract.pdf
2. Programme.xlsx

RECOMMENDATIONS:
- Confirm the access date with the employer

FOLLOW-UP QUESTIONS:
- Are liquidated damages capped?

CONFIDENCE: 85`

	ans := answer.Parse(completion)

	gt.Value(t, ans.Text).Equal("The completion date is 14 March 2026 per the programme.")
	gt.Array(t, ans.KeyFindings).Equal([]string{
		"Sectional completion applies",
		"Retention applies at three percent",
	})
	gt.Array(t, ans.DocumentReferences).Equal([]string{"Contract.pdf", "Programme.xlsx"})
	gt.Array(t, ans.CrossReferences).Length(0)
	gt.Array(t, ans.Recommendations).Equal([]string{"Confirm the access date with the employer"})
	gt.Array(t, ans.FollowUpQuestions).Equal([]string{"Are liquidated damages capped?"})
	gt.Number(t, ans.Confidence).Equal(85)
}

func TestParse_MarkdownHeaders(t *testing.T) {
	completion := `## DIRECT ANSWER
The scaffold design sits with the subcontractor.

**KEY FINDINGS**
- Temporary works coordinator named

**CONFIDENCE:** 70`

	ans := answer.Parse(completion)

	gt.Value(t, ans.Text).Equal("The scaffold design sits with the subcontractor.")
	gt.Array(t, ans.KeyFindings).Equal([]string{"Temporary works coordinator named"})
	gt.Number(t, ans.Confidence).Equal(70)
}

func TestParse_HyphenVariants(t *testing.T) {
	completion := `DIRECT ANSWER: Access starts from the north gate.

CROSS-REFERENCES:
- Logistics plan agrees with the site survey

FOLLOW UP QUESTIONS:
- Is the gate width confirmed?

CONFIDENCE: 90`

	ans := answer.Parse(completion)

	gt.Value(t, ans.Text).Equal("Access starts from the north gate.")
	gt.Array(t, ans.CrossReferences).Equal([]string{"Logistics plan agrees with the site survey"})
	gt.Array(t, ans.FollowUpQuestions).Equal([]string{"Is the gate width confirmed?"})
	gt.Number(t, ans.Confidence).Equal(90)
}

func TestParse_ConfidenceClamped(t *testing.T) {
	ans := answer.Parse("DIRECT ANSWER: Yes.\n\nCONFIDENCE: 250")
	gt.Number(t, ans.Confidence).Equal(100)
}

func TestParse_NoSectionsFallsBackToFullText(t *testing.T) {
	ans := answer.Parse("  The documents do not state a warranty period.  ")

	gt.Value(t, ans.Text).Equal("The documents do not state a warranty period.")
	gt.Array(t, ans.KeyFindings).Length(0)
	gt.Number(t, ans.Confidence).Equal(50)
}

func TestParse_HeuristicConfidence(t *testing.T) {
	base := "No specific figures or dates are given anywhere."
	gt.Number(t, answer.Parse(base).Confidence).Equal(50)

	withDate := "Practical completion falls in March 2026."
	gt.Number(t, answer.Parse(withDate).Confidence).Equal(60)

	withBoth := "Practical completion falls in March 2026 and the bond is £50000."
	gt.Number(t, answer.Parse(withBoth).Confidence).Equal(75)

	long := withBoth + " " + strings.Repeat("Further detail follows. ", 100)
	gt.Number(t, answer.Parse(long).Confidence).Equal(85)
}
