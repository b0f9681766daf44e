package knowledge_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
)

func TestTokenize(t *testing.T) {
	tokens := knowledge.Tokenize("The Completion Date is 2026-03-01, per clause 2.4!")

	// Short tokens ("the", "is", "2026", "01" etc. under four chars) are
	// dropped; the rest arrive lowercased.
	gt.Array(t, tokens).Equal([]string{"completion", "date", "2026", "clause"})
}

func newTestKB(t *testing.T) *model.KnowledgeBase {
	t.Helper()
	project := &model.Project{ID: types.NewProjectID(), Name: "Test Project"}
	return model.NewKnowledgeBase(project)
}

func TestSearch_RanksByMatchCount(t *testing.T) {
	kb := newTestKB(t)

	kb.DocOrder = []string{"a.pdf", "b.pdf", "c.pdf"}
	knowledge.IndexDocument(kb, "a.pdf", "completion date retention")
	knowledge.IndexDocument(kb, "b.pdf", "completion only here")
	knowledge.IndexDocument(kb, "c.pdf", "nothing relevant inside")

	got := knowledge.Search(kb, []string{"completion", "retention"})
	gt.Array(t, got).Equal([]string{"a.pdf", "b.pdf"})
}

func TestSearch_TiesKeepDocumentOrder(t *testing.T) {
	kb := newTestKB(t)

	kb.DocOrder = []string{"first.pdf", "second.pdf"}
	knowledge.IndexDocument(kb, "first.pdf", "programme milestones listed")
	knowledge.IndexDocument(kb, "second.pdf", "programme milestones listed")

	got := knowledge.Search(kb, []string{"programme"})
	gt.Array(t, got).Equal([]string{"first.pdf", "second.pdf"})
}

func TestSearch_CaseInsensitiveTerms(t *testing.T) {
	kb := newTestKB(t)

	kb.DocOrder = []string{"spec.pdf"}
	knowledge.IndexDocument(kb, "spec.pdf", "insulation thickness specified")

	got := knowledge.Search(kb, []string{"INSULATION"})
	gt.Array(t, got).Equal([]string{"spec.pdf"})
}

func TestSearch_NoMatches(t *testing.T) {
	kb := newTestKB(t)
	knowledge.IndexDocument(kb, "a.pdf", "structural calculations")

	got := knowledge.Search(kb, []string{"asbestos"})
	gt.Array(t, got).Equal([]string{})
}

func TestIndexDocument_DeduplicatesTokens(t *testing.T) {
	kb := newTestKB(t)

	knowledge.IndexDocument(kb, "a.pdf", "retention retention retention")
	gt.Array(t, kb.Index["retention"]).Equal([]string{"a.pdf"})
}
