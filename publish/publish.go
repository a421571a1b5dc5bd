// Package publish uploads rendered charts to a remote gallery endpoint,
// authenticating with OAuth2 client credentials.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2/clientcredentials"
)

type Client struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	UploadURL    string

	httpClient *http.Client
}

func NewClient(tokenURL, clientID, clientSecret, uploadURL string) (*Client, error) {
	if uploadURL == "" {
		return nil, fmt.Errorf("no upload URL given")
	}
	if tokenURL == "" || clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("incomplete credentials for token URL %q", tokenURL)
	}

	return &Client{
		TokenURL:     tokenURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		UploadURL:    uploadURL,
	}, nil
}

// Upload posts the chart bytes under the given filename. The token source is
// built once and reused, so repeated uploads in watch mode only fetch a new
// token when the old one expires.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) error {
	if c.httpClient == nil {
		conf := &clientcredentials.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			TokenURL:     c.TokenURL,
		}
		c.httpClient = conf.Client(ctx)
	}

	uploadURL, err := c.uploadURLFor(filename)
	if err != nil {
		return fmt.Errorf("uploadURLFor: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeFor(filename))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

func (c *Client) uploadURLFor(filename string) (string, error) {
	u, err := url.Parse(c.UploadURL)
	if err != nil {
		return "", fmt.Errorf("url.Parse: %w", err)
	}

	q := u.Query()
	q.Set("name", filename)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func contentTypeFor(filename string) string {
	if strings.HasSuffix(filename, ".png") {
		return "image/png"
	}
	return "image/svg+xml"
}
