// Package igdb is the collaborator client for the dump provider: OAuth token
// exchange, dump manifest lookup, and payload download. It has no interesting
// failure behavior of its own; the pipeline treats its errors as "use the
// payload already on disk".
package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/lanelevesque/IGDB-Data-Upsert/internal/config"
)

// Client talks to the dump provider. It is not safe for concurrent use; the
// pipeline is a single sequential caller.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	baseURL      string
	tokenURL     string
	downloadDir  string
	logger       *slog.Logger

	token string
}

// manifest is the per-entity dump descriptor returned by the provider.
type manifest struct {
	S3URL string `json:"s3_url"`
}

// tokenResponse is the OAuth client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// NewClient builds a client from the API settings. Downloads land in
// downloadDir as <entity>.csv.
func NewClient(cfg config.APIConfig, downloadDir string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      cfg.BaseURL,
		tokenURL:     cfg.TokenURL,
		downloadDir:  downloadDir,
		logger:       logger,
	}
}

// Authenticate exchanges the client credentials for a bearer token. Fetch
// calls it lazily; calling it again refreshes the token.
func (c *Client) Authenticate(ctx context.Context) error {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	q.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build token request: %w", err)
	}

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("token request: %w", err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request: unexpected status %d", rsp.StatusCode)
	}

	var tok tokenResponse
	if err := json.NewDecoder(rsp.Body).Decode(&tok); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("token response carried no access token")
	}

	c.token = tok.AccessToken
	c.logger.Info("access token retrieved")
	return nil
}

// Fetch downloads the latest dump for entity into the download directory,
// replacing any previous payload atomically.
func (c *Client) Fetch(ctx context.Context, entity string) error {
	if c.token == "" {
		if err := c.Authenticate(ctx); err != nil {
			return err
		}
	}

	dumpURL, err := c.resolveDumpURL(ctx, entity)
	if err != nil {
		return err
	}

	path := filepath.Join(c.downloadDir, entity+".csv")
	if err := c.download(ctx, dumpURL, path); err != nil {
		return err
	}

	c.logger.Info("dump downloaded", "entity", entity, "path", path)
	return nil
}

// resolveDumpURL asks the provider for the entity's signed payload URL.
func (c *Client) resolveDumpURL(ctx context.Context, entity string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+entity, nil)
	if err != nil {
		return "", fmt.Errorf("build manifest request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Client-ID", c.clientID)

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("manifest request for %s: %w", entity, err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("manifest request for %s: unexpected status %d", entity, rsp.StatusCode)
	}

	var m manifest
	if err := json.NewDecoder(rsp.Body).Decode(&m); err != nil {
		return "", fmt.Errorf("decode manifest for %s: %w", entity, err)
	}
	if m.S3URL == "" {
		return "", fmt.Errorf("manifest for %s carried no payload URL", entity)
	}
	return m.S3URL, nil
}

// download streams the payload to a temp file and renames it into place, so
// a failed transfer never clobbers the previous dump.
func (c *Client) download(ctx context.Context, srcURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}

	rsp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: unexpected status %d", rsp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, rsp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write payload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close payload: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}
