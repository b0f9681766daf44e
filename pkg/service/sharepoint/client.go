package sharepoint

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/construct-hq/tenderbase/pkg/domain/interfaces"
	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/utils/safe"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

// Config holds the app-only credentials and site coordinates for a
// SharePoint document library accessed through Microsoft Graph.
type Config struct {
	TenantID     string
	ClientID     string
	ClientSecret string

	// SiteHost is the SharePoint hostname, e.g. "contoso.sharepoint.com"
	SiteHost string

	// SitePath is the server-relative site path, e.g. "/sites/tenders"
	SitePath string
}

func (c *Config) Validate() error {
	if c.TenantID == "" || c.ClientID == "" || c.ClientSecret == "" {
		return goerr.New("sharepoint credentials are not configured")
	}
	if c.SiteHost == "" {
		return goerr.New("sharepoint site host is required")
	}
	return nil
}

// Client talks to one site's default document library. It implements
// interfaces.FolderStore. The site and drive IDs are resolved lazily on
// first use and cached for the client's lifetime.
type Client struct {
	http    *http.Client
	baseURL string
	cfg     Config

	mu      sync.Mutex
	driveID string
}

var _ interfaces.FolderStore = (*Client)(nil)

// New builds a Graph client using the OAuth2 client-credentials flow
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     "https://login.microsoftonline.com/" + cfg.TenantID + "/oauth2/v2.0/token",
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}

	return &Client{
		http:    cc.Client(ctx),
		baseURL: graphBaseURL,
		cfg:     cfg,
	}, nil
}

// NewWithBaseURL is for tests: it skips the token flow and points the
// client at a stub server.
func NewWithBaseURL(baseURL string, httpClient *http.Client, cfg Config) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		cfg:     cfg,
	}
}

// List walks the drive folder at path and returns document entries,
// descending at most maxDepth levels and stopping at maxCount documents.
func (c *Client) List(ctx context.Context, path string, maxDepth, maxCount int) ([]*model.Document, error) {
	driveID, err := c.resolveDrive(ctx)
	if err != nil {
		return nil, err
	}

	var docs []*model.Document
	if err := c.walk(ctx, driveID, path, 0, maxDepth, maxCount, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Client) walk(ctx context.Context, driveID, path string, depth, maxDepth, maxCount int, docs *[]*model.Document) error {
	if depth >= maxDepth || len(*docs) >= maxCount {
		return nil
	}

	endpoint := c.childrenURL(driveID, path)
	for endpoint != "" {
		var page childrenResponse
		if err := c.getJSON(ctx, endpoint, &page); err != nil {
			return goerr.Wrap(err, "failed to list folder", goerr.V("path", path))
		}

		for i := range page.Value {
			item := &page.Value[i]
			if len(*docs) >= maxCount {
				return nil
			}

			childPath := joinPath(path, item.Name)
			if item.isFolder() {
				if err := c.walk(ctx, driveID, childPath, depth+1, maxDepth, maxCount, docs); err != nil {
					return err
				}
				continue
			}

			doc := &model.Document{
				Name:        item.Name,
				Path:        childPath,
				DownloadRef: driveID + "/" + item.ID,
				ByteSize:    item.Size,
			}
			if item.File != nil {
				doc.MIMEType = item.File.MIMEType
			}
			*docs = append(*docs, doc)
		}

		endpoint = page.NextLink
	}

	return nil
}

// Download fetches the raw content of a drive item. The ref is the
// "driveID/itemID" pair issued by List.
func (c *Client) Download(ctx context.Context, downloadRef string) ([]byte, error) {
	driveID, itemID, ok := strings.Cut(downloadRef, "/")
	if !ok {
		return nil, goerr.New("malformed download reference", goerr.V("ref", downloadRef))
	}

	endpoint := c.baseURL + "/drives/" + url.PathEscape(driveID) + "/items/" + url.PathEscape(itemID) + "/content"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build download request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "download request failed", goerr.V("ref", downloadRef))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, graphStatusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read document body", goerr.V("ref", downloadRef))
	}
	return data, nil
}

// resolveDrive maps the configured site to its default document library
func (c *Client) resolveDrive(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.driveID != "" {
		return c.driveID, nil
	}

	sitePath := strings.TrimPrefix(c.cfg.SitePath, "/")
	var site siteResponse
	siteURL := c.baseURL + "/sites/" + c.cfg.SiteHost
	if sitePath != "" {
		siteURL += ":/" + sitePath
	}
	if err := c.getJSON(ctx, siteURL, &site); err != nil {
		return "", goerr.Wrap(err, "failed to resolve site", goerr.V("host", c.cfg.SiteHost), goerr.V("path", c.cfg.SitePath))
	}

	var drive driveResponse
	if err := c.getJSON(ctx, c.baseURL+"/sites/"+url.PathEscape(site.ID)+"/drive", &drive); err != nil {
		return "", goerr.Wrap(err, "failed to resolve document library", goerr.V("siteID", site.ID))
	}

	c.driveID = drive.ID
	return c.driveID, nil
}

func (c *Client) childrenURL(driveID, path string) string {
	base := c.baseURL + "/drives/" + url.PathEscape(driveID)
	path = strings.Trim(path, "/")
	if path == "" {
		return base + "/root/children"
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return base + "/root:/" + strings.Join(segments, "/") + ":/children"
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return goerr.Wrap(err, "graph request failed", goerr.V("url", endpoint))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return graphStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode graph response", goerr.V("url", endpoint))
	}
	return nil
}

func graphStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var ge graphError
	if err := json.Unmarshal(body, &ge); err == nil && ge.Error.Code != "" {
		return goerr.New("graph API error",
			goerr.V("status", resp.StatusCode),
			goerr.V("code", ge.Error.Code),
			goerr.V("message", ge.Error.Message),
		)
	}
	return goerr.New("unexpected graph response", goerr.V("status", resp.StatusCode))
}

func joinPath(parent, name string) string {
	parent = strings.Trim(parent, "/")
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
