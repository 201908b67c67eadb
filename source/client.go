// Package source talks to the remote product catalog and keeps the loaded
// catalog in memory for the rest of the storefront.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"go-storefront/models"
)

const (
	// DefaultBaseURL is the public FakeStore API
	DefaultBaseURL = "https://fakestoreapi.com"
	// DefaultTimeout bounds every request made by the client
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 10 * 1024 * 1024
)

// Catalog is a provider of product data
type Catalog interface {
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int) (models.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

// Client reads products from a FakeStore-compatible HTTP API
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// NewClient creates a client. An empty baseURL uses DefaultBaseURL and a
// non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		validate: NewValidator(),
	}
}

// Products fetches the whole catalog
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	body, err := c.get(ctx, "products", "/products")
	if err != nil {
		return nil, err
	}
	return decodeProducts(c.validate, body)
}

// Product fetches a single product
func (c *Client) Product(ctx context.Context, id int) (models.Product, error) {
	if id <= 0 {
		return models.Product{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	body, err := c.get(ctx, "product", "/products/"+strconv.Itoa(id))
	var fe *FetchError
	if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
		return models.Product{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return models.Product{}, err
	}
	// The API answers unknown ids with an empty 200
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return models.Product{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return decodeProduct(c.validate, body)
}

// ProductsByCategory fetches the products of one category
func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	body, err := c.get(ctx, "products by category", "/products/category/"+url.PathEscape(category))
	if err != nil {
		return nil, err
	}
	return decodeProducts(c.validate, body)
}

// Categories fetches the category keys known to the API
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "categories", "/products/categories")
	if err != nil {
		return nil, err
	}
	var out []string
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Op: op, Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}
