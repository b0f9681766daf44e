package usecase

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/domain/types"
	"github.com/construct-hq/tenderbase/pkg/utils/logging"
)

//go:embed prompt/rfi_system.md
var rfiSystemPrompt string

const (
	// maxGeneratedRFIs caps a model-generated set; maxFallbackRFIs caps
	// the rule-based set used when the model is unavailable or returns
	// garbage.
	maxGeneratedRFIs = 20
	maxFallbackRFIs  = 12

	// rfiContextExcerpt bounds each analysis field quoted in the prompt
	rfiContextExcerpt = 1000

	systemGeneratedBy = "System Generated"
)

// RFIUseCase derives clarification requests from a completed tender
// analysis. Generation runs once per analysis; a second run must go
// through Regenerate, which discards the prior set.
type RFIUseCase struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient
}

func NewRFIUseCase(repo interfaces.Repository, llmClient gollem.LLMClient) *RFIUseCase {
	return &RFIUseCase{repo: repo, llmClient: llmClient}
}

// rawRFI is the duck-typed shape of one model-generated RFI entry
type rawRFI struct {
	Category          string `json:"category"`
	Priority          string `json:"priority"`
	Question          string `json:"question"`
	Context           string `json:"context"`
	DocumentReference string `json:"document_reference"`
	PricingImpact     string `json:"pricing_impact"`
	RiskIfUnresolved  string `json:"risk_if_unresolved"`
}

// Generate produces the RFI set of a project's analysis. When RFIs already
// exist the call reports the precondition failure in the result instead of
// erroring, matching how the HTTP layer presents it.
func (uc *RFIUseCase) Generate(ctx context.Context, projectID types.ProjectID, createdBy string) (*model.RFIGenerationResult, error) {
	analysis, err := uc.repo.Analysis().GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(ErrNoAnalysis, "run an analysis before generating RFIs", goerr.V("projectID", projectID))
	}

	existing, err := uc.repo.RFI().CountByAnalysisID(ctx, analysis.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count existing RFIs")
	}
	if existing > 0 {
		return &model.RFIGenerationResult{
			Success: false,
			Message: fmt.Sprintf("RFIs already generated for this project (%d items exist)", existing),
			Count:   existing,
		}, nil
	}

	return uc.generate(ctx, analysis, createdBy)
}

// Regenerate deletes the existing RFI set and generates a fresh one
func (uc *RFIUseCase) Regenerate(ctx context.Context, projectID types.ProjectID, createdBy string) (*model.RFIGenerationResult, error) {
	logger := logging.From(ctx)

	analysis, err := uc.repo.Analysis().GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(ErrNoAnalysis, "run an analysis before generating RFIs", goerr.V("projectID", projectID))
	}

	deleted, err := uc.repo.RFI().DeleteByAnalysisID(ctx, analysis.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to delete existing RFIs")
	}
	logger.Info("deleted existing RFI items", "count", deleted, "analysisID", analysis.ID)

	return uc.generate(ctx, analysis, createdBy)
}

// List returns the RFI set of a project ordered by priority
func (uc *RFIUseCase) List(ctx context.Context, projectID types.ProjectID) ([]*model.RFIItem, error) {
	analysis, err := uc.repo.Analysis().GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(ErrNoAnalysis, "project has no analysis", goerr.V("projectID", projectID))
	}
	return uc.repo.RFI().ListByAnalysisID(ctx, analysis.ID)
}

// UpdateStatus changes the lifecycle status of one RFI item
func (uc *RFIUseCase) UpdateStatus(ctx context.Context, id types.RFIID, status types.RFIStatus) error {
	return uc.repo.RFI().UpdateStatus(ctx, id, status)
}

func (uc *RFIUseCase) generate(ctx context.Context, analysis *model.TenderAnalysis, createdBy string) (*model.RFIGenerationResult, error) {
	logger := logging.From(ctx)

	raws := uc.generateWithModel(ctx, analysis)
	if len(raws) == 0 {
		logger.Info("falling back to standard RFI set", "analysisID", analysis.ID)
		raws = fallbackRFIs(analysis)
	}

	if createdBy == "" {
		createdBy = systemGeneratedBy
	}

	categories := make(map[types.RFICategory]int)
	created := 0
	for _, raw := range raws {
		item := normalizeRFI(raw, analysis, createdBy)
		if err := item.Validate(); err != nil {
			logger.Warn("skipping invalid RFI", "error", err.Error())
			continue
		}
		if _, err := uc.repo.RFI().Create(ctx, item); err != nil {
			logger.Warn("failed to store RFI item", "error", err.Error())
			continue
		}
		categories[item.Category]++
		created++
	}

	return &model.RFIGenerationResult{
		Success:    true,
		Message:    fmt.Sprintf("Successfully generated %d RFI items", created),
		Count:      created,
		Categories: categories,
	}, nil
}

// generateWithModel asks the generative model for an RFI set. Any failure
// returns nil so the caller drops to the rule-based fallback.
func (uc *RFIUseCase) generateWithModel(ctx context.Context, analysis *model.TenderAnalysis) []rawRFI {
	logger := logging.From(ctx)
	if uc.llmClient == nil {
		return nil
	}

	session, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(rfiSystemPrompt),
	)
	if err != nil {
		logger.Warn("failed to create LLM session for RFIs", "error", err.Error())
		return nil
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildRFIPrompt(analysis)))
	if err != nil || len(resp.Texts) == 0 {
		logger.Warn("RFI generation failed", "error", fmt.Sprint(err))
		return nil
	}

	raws := parseRFIResponse(resp.Texts[0])
	if len(raws) > maxGeneratedRFIs {
		raws = raws[:maxGeneratedRFIs]
	}
	return raws
}

func buildRFIPrompt(analysis *model.TenderAnalysis) string {
	var sb strings.Builder
	sb.WriteString("ANALYSIS SUMMARY:\n")
	sb.WriteString(excerpt(analysis.ProjectOverview, rfiContextExcerpt))
	sb.WriteString("\n\nSCOPE OF WORK:\n")
	sb.WriteString(excerpt(analysis.ScopeOfWork, rfiContextExcerpt))

	if len(analysis.KeyRequirements) > 0 {
		sb.WriteString("\n\nKEY REQUIREMENTS:\n")
		for _, req := range analysis.KeyRequirements {
			sb.WriteString("- " + req + "\n")
		}
	}

	sb.WriteString("\nTECHNICAL SPECIFICATIONS:\n")
	sb.WriteString(excerpt(analysis.TechnicalSpecifications, rfiContextExcerpt))

	if len(analysis.DocumentsAnalyzed) > 0 {
		sb.WriteString("\n\nDOCUMENTS ANALYZED:\n")
		sb.WriteString(strings.Join(analysis.DocumentsAnalyzed, ", "))
	}

	sb.WriteString("\n")
	return sb.String()
}

// parseRFIResponse locates the JSON array in a completion and decodes it.
// A completion with no parseable array yields nil.
func parseRFIResponse(completion string) []rawRFI {
	start := strings.Index(completion, "[")
	end := strings.LastIndex(completion, "]")
	if start < 0 || end <= start {
		return nil
	}

	var raws []rawRFI
	if err := json.Unmarshal([]byte(completion[start:end+1]), &raws); err != nil {
		return nil
	}

	var valid []rawRFI
	for _, r := range raws {
		if strings.TrimSpace(r.Question) != "" {
			valid = append(valid, r)
		}
	}
	return valid
}

// normalizeRFI coerces a raw entry into a valid item: categories and
// priorities fold onto the closed taxonomies and the free-text fields get
// their standard defaults.
func normalizeRFI(raw rawRFI, analysis *model.TenderAnalysis, createdBy string) *model.RFIItem {
	item := &model.RFIItem{
		ProjectID:         analysis.ProjectID,
		AnalysisID:        analysis.ID,
		Category:          types.ParseRFICategory(raw.Category),
		Priority:          types.ParseRFIPriority(raw.Priority),
		Question:          strings.TrimSpace(raw.Question),
		Context:           raw.Context,
		DocumentReference: raw.DocumentReference,
		PricingImpact:     types.ParsePricingImpact(raw.PricingImpact),
		RiskIfUnresolved:  raw.RiskIfUnresolved,
		Status:            types.RFIStatusPending,
		CreatedBy:         createdBy,
	}

	if item.Context == "" {
		item.Context = "Clarification required for accurate estimation"
	}
	if item.DocumentReference == "" {
		item.DocumentReference = "General"
	}
	if item.RiskIfUnresolved == "" {
		item.RiskIfUnresolved = "May affect pricing accuracy"
	}
	return item
}

// fallbackRFIs is the rule-based set used when the model is unavailable.
// Projects in a live environment additionally get a coordination RFI.
func fallbackRFIs(analysis *model.TenderAnalysis) []rawRFI {
	rfis := []rawRFI{
		{
			Category:         "PROGRAMME",
			Priority:         "CRITICAL",
			Question:         "What is the confirmed start on site date and required completion date?",
			Context:          "Essential for programme planning and resource allocation",
			PricingImpact:    "HIGH",
			RiskIfUnresolved: "Cannot price time-related costs or assess programme risk",
		},
		{
			Category:         "TECHNICAL",
			Priority:         "HIGH",
			Question:         "Please provide complete technical specifications for all major building elements",
			Context:          "Current specifications appear incomplete for accurate material pricing",
			PricingImpact:    "HIGH",
			RiskIfUnresolved: "May require provisional sums for unspecified elements",
		},
		{
			Category:         "SCOPE",
			Priority:         "CRITICAL",
			Question:         "Please clarify the exact scope boundaries and any exclusions from contractor works",
			Context:          "Scope boundaries are unclear which could lead to disputes",
			PricingImpact:    "HIGH",
			RiskIfUnresolved: "Risk of pricing gaps or overlaps with other contractors",
		},
		{
			Category:         "COMMERCIAL",
			Priority:         "HIGH",
			Question:         "Please confirm payment terms, retention percentages and milestone definitions",
			Context:          "Commercial terms affect cash flow and pricing strategy",
			PricingImpact:    "MEDIUM",
			RiskIfUnresolved: "Cannot assess commercial risk or price accordingly",
		},
		{
			Category:         "ACCESS",
			Priority:         "HIGH",
			Question:         "Please provide site access arrangements, working hours and any restrictions",
			Context:          "Access limitations affect logistics and programme costs",
			PricingImpact:    "MEDIUM",
			RiskIfUnresolved: "May underestimate logistics and programme costs",
		},
	}

	if strings.Contains(strings.ToLower(analysis.ProjectOverview), "live environment") {
		rfis = append(rfis, rawRFI{
			Category:         "COORDINATION",
			Priority:         "HIGH",
			Question:         "Please detail coordination requirements with ongoing operations and other contractors",
			Context:          "Live environment requires careful coordination planning",
			PricingImpact:    "HIGH",
			RiskIfUnresolved: "Cannot price coordination and protection measures",
		})
	}

	if len(rfis) > maxFallbackRFIs {
		rfis = rfis[:maxFallbackRFIs]
	}
	return rfis
}

func excerpt(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
