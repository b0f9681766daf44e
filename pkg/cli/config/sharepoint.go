package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/construct-hq/tenderbase/pkg/service/sharepoint"
)

// SharePoint holds CLI flags for the document store connection
type SharePoint struct {
	tenantID     string
	clientID     string
	clientSecret string
	siteHost     string
	sitePath     string
}

func (s *SharePoint) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sharepoint-tenant-id",
			Usage:       "Azure AD tenant ID",
			Sources:     cli.EnvVars("TENDERBASE_SHAREPOINT_TENANT_ID"),
			Destination: &s.tenantID,
		},
		&cli.StringFlag{
			Name:        "sharepoint-client-id",
			Usage:       "Azure AD application (client) ID",
			Sources:     cli.EnvVars("TENDERBASE_SHAREPOINT_CLIENT_ID"),
			Destination: &s.clientID,
		},
		&cli.StringFlag{
			Name:        "sharepoint-client-secret",
			Usage:       "Azure AD client secret",
			Sources:     cli.EnvVars("TENDERBASE_SHAREPOINT_CLIENT_SECRET"),
			Destination: &s.clientSecret,
		},
		&cli.StringFlag{
			Name:        "sharepoint-site-host",
			Usage:       "SharePoint hostname (e.g. contoso.sharepoint.com)",
			Sources:     cli.EnvVars("TENDERBASE_SHAREPOINT_SITE_HOST"),
			Destination: &s.siteHost,
		},
		&cli.StringFlag{
			Name:        "sharepoint-site-path",
			Usage:       "Server-relative site path (e.g. /sites/tenders)",
			Sources:     cli.EnvVars("TENDERBASE_SHAREPOINT_SITE_PATH"),
			Destination: &s.sitePath,
		},
	}
}

func (s *SharePoint) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("tenant_id", s.tenantID),
		slog.String("site_host", s.siteHost),
		slog.String("site_path", s.sitePath),
		slog.Bool("configured", s.IsConfigured()),
	}
}

func (s *SharePoint) IsConfigured() bool {
	return s.tenantID != "" && s.clientID != "" && s.clientSecret != "" && s.siteHost != ""
}

// Configure creates the Graph client. Returns nil when the connection is
// not configured, which disables knowledge base builds.
func (s *SharePoint) Configure(ctx context.Context) (*sharepoint.Client, error) {
	if !s.IsConfigured() {
		return nil, nil
	}

	return sharepoint.New(ctx, sharepoint.Config{
		TenantID:     s.tenantID,
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		SiteHost:     s.siteHost,
		SitePath:     s.sitePath,
	})
}
