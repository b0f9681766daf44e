package model

import (
	"time"

	"github.com/construct-hq/tenderbase/pkg/domain/types"
)

// ProcessingSummary reports the per-document outcomes of a knowledge base
// build. A document is counted either as succeeded or failed, never both.
type ProcessingSummary struct {
	TotalDocuments     int
	Succeeded          int
	Failed             int
	TotalContentLength int
	DocumentTypes      map[string]int
}

// KnowledgeBase is the per-project aggregate of extracted, categorized
// document text plus its inverted search index. Exactly one authoritative
// instance exists per project at any time, held in a TTL cache.
type KnowledgeBase struct {
	ProjectID   types.ProjectID
	ProjectName string

	// Categories holds the truncated per-document summaries grouped by
	// taxonomy category.
	Categories map[types.DocumentCategory][]*ExtractedContent

	// Contents maps document name to full extracted text, used for
	// retrieval-driven context assembly.
	Contents map[string]string

	// Index maps lowercased tokens (length > 3) to the names of documents
	// containing them.
	Index map[string][]string

	// DocOrder records first-seen document order; search ties are broken
	// by this order so results are deterministic.
	DocOrder []string

	Summary ProcessingSummary
	BuiltAt time.Time
}

// NewKnowledgeBase returns an empty knowledge base for the given project
func NewKnowledgeBase(project *Project) *KnowledgeBase {
	return &KnowledgeBase{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Categories:  make(map[types.DocumentCategory][]*ExtractedContent),
		Contents:    make(map[string]string),
		Index:       make(map[string][]string),
		Summary: ProcessingSummary{
			DocumentTypes: make(map[string]int),
		},
		BuiltAt: time.Now().UTC(),
	}
}

// CategoryNames returns the categories present in the knowledge base, in
// taxonomy declaration order.
func (kb *KnowledgeBase) CategoryNames() []types.DocumentCategory {
	var out []types.DocumentCategory
	for _, c := range append(types.AllDocumentCategories(), types.CategoryOther) {
		if len(kb.Categories[c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}
