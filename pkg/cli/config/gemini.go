package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/urfave/cli/v3"
)

// Gemini selects the Vertex AI project and region used for answer and
// analysis generation. Leaving the project unset runs the service in
// document-only mode: knowledge bases still build, but ask/analyze/RFI
// generation report that no model is configured.
type Gemini struct {
	projectID string
	location  string
}

func (g *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini (empty disables generation)",
			Sources:     cli.EnvVars("TENDERBASE_GEMINI_PROJECT"),
			Destination: &g.projectID,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud region for Gemini",
			Value:       "europe-west2",
			Sources:     cli.EnvVars("TENDERBASE_GEMINI_LOCATION"),
			Destination: &g.location,
		},
	}
}

func (g *Gemini) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("gemini_project", g.projectID),
		slog.String("gemini_location", g.location),
		slog.Bool("generation_enabled", g.projectID != ""),
	}
}

// Configure builds the LLM client, or returns nil when generation is
// disabled.
func (g *Gemini) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if g.projectID == "" {
		return nil, nil
	}
	if g.location == "" {
		return nil, goerr.New("gemini-location is required when gemini-project is set")
	}

	client, err := gemini.New(ctx, g.projectID, g.location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client",
			goerr.V("project", g.projectID), goerr.V("location", g.location))
	}
	return client, nil
}
