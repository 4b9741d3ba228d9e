// Package enrich fetches page metadata for saved URLs from an external
// content-extraction API. Enrichment is best effort: any failure
// degrades to placeholder metadata and never blocks link creation.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// PlaceholderImageURL is used when enrichment fails or returns no image.
const PlaceholderImageURL = "/static/placeholder.svg"

// Metadata is the subset of the extraction API response the service
// consumes.
type Metadata struct {
	Title    string
	ImageURL *string
	SiteName string
	PageURL  string
}

// apiResponse mirrors the article-extraction API wire format. Only the
// consumed fields are declared.
type apiResponse struct {
	Objects []struct {
		Title    string `json:"title"`
		SiteName string `json:"siteName"`
		PageURL  string `json:"pageUrl"`
		Images   []struct {
			URL     string `json:"url"`
			Primary bool   `json:"primary"`
		} `json:"images"`
	} `json:"objects"`
}

// Client calls the content-extraction API.
type Client struct {
	apiURL string
	token  string
	client *http.Client
}

// New creates an enrichment client for the given API endpoint and token.
func New(apiURL, token string) *Client {
	return &Client{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Fetch requests metadata for the given page URL. Callers should fall
// back to Fallback(url) on any error.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*Metadata, error) {
	endpoint := fmt.Sprintf("%s?token=%s&url=%s", c.apiURL, url.QueryEscape(c.token), url.QueryEscape(pageURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "LinkStash/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrichment API returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Objects) == 0 {
		return nil, errors.New("enrichment API returned no objects")
	}

	obj := parsed.Objects[0]
	meta := &Metadata{
		Title:    obj.Title,
		SiteName: obj.SiteName,
		PageURL:  obj.PageURL,
	}
	if len(obj.Images) > 0 && obj.Images[0].URL != "" {
		img := obj.Images[0].URL
		meta.ImageURL = &img
	}

	// Fill gaps so callers never persist empty metadata fields.
	if meta.Title == "" {
		meta.Title = "Title"
	}
	if meta.SiteName == "" {
		meta.SiteName = pageURL
	}
	if meta.PageURL == "" {
		meta.PageURL = pageURL
	}

	return meta, nil
}

// Fallback returns the placeholder metadata used when enrichment fails.
func Fallback(pageURL string) *Metadata {
	img := PlaceholderImageURL
	return &Metadata{
		Title:    "Title",
		ImageURL: &img,
		SiteName: pageURL,
		PageURL:  pageURL,
	}
}
