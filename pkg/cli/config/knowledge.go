package config

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/construct-hq/tenderbase/pkg/service/knowledge"
)

// Knowledge holds CLI flags tuning the knowledge base builder
type Knowledge struct {
	maxDepth        int
	maxDocuments    int
	minTextLength   int
	docContentLimit int
	cacheTTL        time.Duration
	fetchTimeout    time.Duration
}

func (k *Knowledge) Flags() []cli.Flag {
	defaults := knowledge.DefaultLimits()
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "knowledge-max-depth",
			Usage:       "Maximum folder depth for document discovery",
			Value:       defaults.MaxDepth,
			Sources:     cli.EnvVars("TENDERBASE_KNOWLEDGE_MAX_DEPTH"),
			Destination: &k.maxDepth,
		},
		&cli.IntFlag{
			Name:        "knowledge-max-documents",
			Usage:       "Maximum documents per knowledge base build",
			Value:       defaults.MaxDocuments,
			Sources:     cli.EnvVars("TENDERBASE_KNOWLEDGE_MAX_DOCUMENTS"),
			Destination: &k.maxDocuments,
		},
		&cli.IntFlag{
			Name:        "knowledge-min-text-length",
			Usage:       "Minimum extracted text length for a document to count",
			Value:       defaults.MinTextLength,
			Sources:     cli.EnvVars("TENDERBASE_KNOWLEDGE_MIN_TEXT_LENGTH"),
			Destination: &k.minTextLength,
		},
		&cli.IntFlag{
			Name:        "knowledge-doc-content-limit",
			Usage:       "Per-document summary text limit in characters",
			Value:       defaults.DocContentLimit,
			Sources:     cli.EnvVars("TENDERBASE_KNOWLEDGE_DOC_CONTENT_LIMIT"),
			Destination: &k.docContentLimit,
		},
		&cli.DurationFlag{
			Name:        "knowledge-cache-ttl",
			Usage:       "Knowledge base cache lifetime",
			Value:       defaults.CacheTTL,
			Sources:     cli.EnvVars("TENDERBASE_KNOWLEDGE_CACHE_TTL"),
			Destination: &k.cacheTTL,
		},
		&cli.DurationFlag{
			Name:        "knowledge-fetch-timeout",
			Usage:       "Timeout for each folder listing and document download",
			Value:       defaults.FetchTimeout,
			Sources:     cli.EnvVars("TENDERBASE_KNOWLEDGE_FETCH_TIMEOUT"),
			Destination: &k.fetchTimeout,
		},
	}
}

// Limits returns the configured builder limits
func (k *Knowledge) Limits() knowledge.Limits {
	return knowledge.Limits{
		MaxDepth:        k.maxDepth,
		MaxDocuments:    k.maxDocuments,
		MinTextLength:   k.minTextLength,
		DocContentLimit: k.docContentLimit,
		CacheTTL:        k.cacheTTL,
		FetchTimeout:    k.fetchTimeout,
	}
}
