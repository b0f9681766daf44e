package knowledge

import (
	"regexp"
	"sort"
	"strings"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
)

// minTokenLength excludes short and stop-adjacent tokens from the index;
// "the", "for", "and" and friends never make it in.
const minTokenLength = 4

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize splits text on non-word boundaries and returns the lowercased
// tokens long enough to be indexed.
func Tokenize(text string) []string {
	var tokens []string
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(tok) >= minTokenLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// IndexDocument registers every indexable token of text against the
// document name in the knowledge base's inverted index.
func IndexDocument(kb *model.KnowledgeBase, docName, text string) {
	seen := make(map[string]bool)
	for _, tok := range Tokenize(text) {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		kb.Index[tok] = append(kb.Index[tok], docName)
	}
}

// Search returns the names of documents matching any of the query terms,
// ordered by descending number of distinct matching terms. Ties keep the
// first-seen document order so results are deterministic.
func Search(kb *model.KnowledgeBase, terms []string) []string {
	hits := make(map[string]int)
	for _, term := range terms {
		for _, doc := range kb.Index[strings.ToLower(term)] {
			hits[doc]++
		}
	}

	order := make(map[string]int, len(kb.DocOrder))
	for i, name := range kb.DocOrder {
		order[name] = i
	}

	docs := make([]string, 0, len(hits))
	for doc := range hits {
		docs = append(docs, doc)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if hits[docs[i]] != hits[docs[j]] {
			return hits[docs[i]] > hits[docs[j]]
		}
		return order[docs[i]] < order[docs[j]]
	})

	return docs
}
