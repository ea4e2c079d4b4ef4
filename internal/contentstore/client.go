// Package contentstore talks to the CDN the games load assets from. Assets
// are addressed by deterministic paths; absence is a signal to generate, not
// an error.
package contentstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"playbox/internal/inventory"
)

const userAgent = "playbox/0.1"

// Client probes and downloads content-store assets.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a content-store client for the given base URL.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("content store base url required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// URL returns the deterministic remote address for an asset.
func (c *Client) URL(a inventory.Asset) string {
	return c.baseURL + "/" + a.RemotePath()
}

// Exists probes the store with a HEAD request. Any transport failure or
// non-2xx response reads as "not present": reconciliation fails open and the
// asset becomes a generation candidate.
func (c *Client) Exists(ctx context.Context, a inventory.Asset) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.URL(a), nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// LoadReference fetches an illustration used as a style reference for image
// generation. References always live in the illustrations folder.
func (c *Client) LoadReference(ctx context.Context, fileName string) ([]byte, error) {
	url := c.baseURL + "/illustrations/" + fileName
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build reference request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch reference %s: %w", fileName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch reference %s: store returned %d", fileName, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Download fetches an asset into destDir, preserving its subfolder layout.
// Returns the local path written.
func (c *Client) Download(ctx context.Context, a inventory.Asset, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(a), nil)
	if err != nil {
		return "", fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", a.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: store returned %d", a.Key, resp.StatusCode)
	}

	localPath := filepath.Join(destDir, filepath.FromSlash(a.RemotePath()))
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", localPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(localPath)
		return "", fmt.Errorf("write %s: %w", localPath, err)
	}
	return localPath, nil
}
