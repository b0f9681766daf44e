package knowledge

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/singleflight"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/utils/logging"
)

// ErrNoDocuments is returned when the project folder yields no documents.
// This is the only fatal failure of a build: everything else degrades to a
// failure count.
var ErrNoDocuments = goerr.New("no documents found in project folder")

// TextExtractor converts raw document bytes into plain text
type TextExtractor interface {
	Extract(data []byte, mimeType, filename string) string
}

// Limits bounds the cost of a knowledge base build
type Limits struct {
	MaxDepth      int
	MaxDocuments  int
	MinTextLength int

	// DocContentLimit truncates the per-document summary text stored in
	// the category listings.
	DocContentLimit int

	CacheTTL time.Duration

	// FetchTimeout bounds each folder listing and document download call
	FetchTimeout time.Duration
}

// DefaultLimits returns the production defaults
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:        5,
		MaxDocuments:    50,
		MinTextLength:   50,
		DocContentLimit: 8000,
		CacheTTL:        time.Hour,
		FetchTimeout:    8 * time.Second,
	}
}

// Builder assembles per-project knowledge bases from the remote folder
// store and keeps them in a TTL cache.
type Builder struct {
	store       interfaces.FolderStore
	cache       interfaces.Cache
	extractor   TextExtractor
	categorizer *Categorizer
	limits      Limits
	group       singleflight.Group
}

func NewBuilder(store interfaces.FolderStore, cache interfaces.Cache, extractor TextExtractor, categorizer *Categorizer, limits Limits) *Builder {
	return &Builder{
		store:       store,
		cache:       cache,
		extractor:   extractor,
		categorizer: categorizer,
		limits:      limits,
	}
}

func cacheKey(projectID string) string {
	return "project_knowledge_" + projectID
}

// Build returns the knowledge base of a project, reusing the cached
// aggregate unless forceRefresh is set or the cache entry has expired.
// Concurrent builds for the same project collapse into one.
func (b *Builder) Build(ctx context.Context, project *model.Project, forceRefresh bool) (*model.KnowledgeBase, error) {
	logger := logging.From(ctx)
	key := cacheKey(project.ID.String())

	if !forceRefresh {
		cached, err := b.cache.Get(ctx, key)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read knowledge cache", goerr.V("key", key))
		}
		if kb, ok := cached.(*model.KnowledgeBase); ok {
			logger.Info("using cached knowledge base", "project", project.Name)
			return kb, nil
		}
	}

	v, err, _ := b.group.Do(project.ID.String(), func() (any, error) {
		return b.build(ctx, project)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.KnowledgeBase), nil
}

// Invalidate drops the cached knowledge base of a project
func (b *Builder) Invalidate(ctx context.Context, projectID string) error {
	return b.cache.Delete(ctx, cacheKey(projectID))
}

func (b *Builder) build(ctx context.Context, project *model.Project) (*model.KnowledgeBase, error) {
	logger := logging.From(ctx)
	logger.Info("building knowledge base", "project", project.Name, "folder", project.FolderPath)

	if b.store == nil {
		return nil, goerr.New("document store is not configured")
	}

	listCtx, cancel := context.WithTimeout(ctx, b.limits.FetchTimeout)
	docs, err := b.store.List(listCtx, project.FolderPath, b.limits.MaxDepth, b.limits.MaxDocuments)
	cancel()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list project documents", goerr.V("folder", project.FolderPath))
	}
	if len(docs) == 0 {
		return nil, goerr.Wrap(ErrNoDocuments, "empty project folder", goerr.V("folder", project.FolderPath))
	}

	kb := model.NewKnowledgeBase(project)
	kb.Summary.TotalDocuments = len(docs)

	for _, doc := range docs {
		if err := b.processDocument(ctx, kb, doc); err != nil {
			logger.Warn("failed to process document", "name", doc.Name, "error", err.Error())
			kb.Summary.Failed++
		}
	}

	if err := b.cache.Set(ctx, cacheKey(project.ID.String()), kb, b.limits.CacheTTL); err != nil {
		logger.Warn("failed to cache knowledge base", "error", err.Error())
	}

	logger.Info("knowledge base built",
		"project", project.Name,
		"succeeded", kb.Summary.Succeeded,
		"failed", kb.Summary.Failed,
	)
	return kb, nil
}

func (b *Builder) processDocument(ctx context.Context, kb *model.KnowledgeBase, doc *model.Document) error {
	fetchCtx, cancel := context.WithTimeout(ctx, b.limits.FetchTimeout)
	data, err := b.store.Download(fetchCtx, doc.DownloadRef)
	cancel()
	if err != nil {
		return goerr.Wrap(err, "download failed", goerr.V("ref", doc.DownloadRef))
	}

	text := b.extractor.Extract(data, doc.MIMEType, doc.Name)
	if len(strings.TrimSpace(text)) <= b.limits.MinTextLength {
		return goerr.New("no usable content", goerr.V("name", doc.Name), goerr.V("length", len(text)))
	}

	category := b.categorizer.Categorize(doc.Name, text)

	summaryText := text
	if len(summaryText) > b.limits.DocContentLimit {
		summaryText = summaryText[:b.limits.DocContentLimit]
	}

	kb.Categories[category] = append(kb.Categories[category], &model.ExtractedContent{
		DocumentName: doc.Name,
		Category:     category,
		Path:         doc.Path,
		MIMEType:     doc.MIMEType,
		Text:         summaryText,
		TextLength:   len(text),
	})
	kb.Contents[doc.Name] = text
	kb.DocOrder = append(kb.DocOrder, doc.Name)
	IndexDocument(kb, doc.Name, text)

	kb.Summary.Succeeded++
	kb.Summary.TotalContentLength += len(text)
	kb.Summary.DocumentTypes[mimeSubtype(doc.MIMEType)]++

	return nil
}

func mimeSubtype(mimeType string) string {
	if mimeType == "" {
		return "unknown"
	}
	if i := strings.LastIndex(mimeType, "/"); i >= 0 {
		return mimeType[i+1:]
	}
	return mimeType
}
