// Package barcode looks up product details for a scanned barcode
// against the Open Food Facts database.
//
// This is an external collaborator, fully isolated from the inventory
// core: its only contract with the rest of the system is the Product
// shape used to pre-fill an ingredient draft. Lookup failures never
// reach the store.
package barcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Open Food Facts API endpoint.
const DefaultBaseURL = "https://world.openfoodfacts.org"

// DefaultTimeout bounds a single lookup. The scanner UI sits on this
// call, so it must fail fast rather than hang.
const DefaultTimeout = 10 * time.Second

// ErrNotFound is returned when the database has no product for the
// barcode. Distinct from transport errors so the caller can offer
// "scan again" instead of "check your connection".
var ErrNotFound = errors.New("barcode: product not found")

// Product is the prefill payload for an ingredient draft.
type Product struct {
	Name  string `json:"name,omitempty"`
	Brand string `json:"brand,omitempty"`
}

// Client queries the Open Food Facts product API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests and mirrors).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithTimeout overrides the per-lookup timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// NewClient creates a client with the default endpoint and timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// lookupResponse is the subset of the Open Food Facts v2 product
// response the prefill path needs. status == 1 means found.
type lookupResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string `json:"product_name"`
		Brands      string `json:"brands"`
	} `json:"product"`
}

// Lookup fetches the product for a barcode. Returns ErrNotFound when
// the database has no entry; any other error is a transport or
// decoding failure.
func (c *Client) Lookup(ctx context.Context, code string) (Product, error) {
	if code == "" {
		return Product{}, errors.New("barcode: code is required")
	}

	u := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Product{}, fmt.Errorf("barcode: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("barcode: lookup %s: %w", code, err)
	}
	defer resp.Body.Close()

	// The API reports "not found" both as HTTP 404 and as status=0 in
	// a 200 body, depending on the product namespace.
	if resp.StatusCode == http.StatusNotFound {
		return Product{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("barcode: lookup %s: unexpected status %s", code, resp.Status)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Product{}, fmt.Errorf("barcode: decode response: %w", err)
	}
	if body.Status != 1 {
		return Product{}, ErrNotFound
	}

	return Product{
		Name:  body.Product.ProductName,
		Brand: body.Product.Brands,
	}, nil
}
