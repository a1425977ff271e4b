package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"catalog-tool/internal/executor"
	"catalog-tool/internal/logging"

	"github.com/tidwall/gjson"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidJSON = errors.New("response body is not valid JSON")
	ErrNotList     = errors.New("response body is not a list")
)

// Response is a decoded catalog reply. Body is left loosely typed; callers
// pick the fields they need.
type Response struct {
	StatusCode int
	Body       gjson.Result
	Raw        []byte
}

// Client wraps REST access to the product catalog.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient creates a client for rawURL, e.g. https://fakestoreapi.com.
// Paths are appended to rawURL as given, so a base with a path prefix works.
func NewClient(rawURL string, httpClient *http.Client) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("catalog: parse url: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: parsed, httpClient: httpClient}, nil
}

// List fetches every product. The body must be a JSON array.
func (c *Client) List(ctx context.Context) (*Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/"+Resource, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !resp.Body.IsArray() {
		return nil, ErrNotList
	}
	return resp, nil
}

// Get fetches one product. A non-2xx status is reported as ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (*Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, itemPath(id), nil)
	if err != nil {
		return nil, err
	}
	resp, body, err := executor.ExecuteRequest(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	if !executor.IsSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("product with ID %s %w (status %d)", id, ErrNotFound, resp.StatusCode)
	}
	return decode(resp.StatusCode, body)
}

// Create posts a new product. The reply is decoded whatever its status.
func (c *Client) Create(ctx context.Context, product NewProduct) (*Response, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/"+Resource, product)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// Delete removes a product. The reply is decoded whatever its status.
func (c *Client) Delete(ctx context.Context, id string) (*Response, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, itemPath(id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !executor.IsSuccess(resp.StatusCode) {
		logging.Logf(logging.Warning, "Delete of product %s returned status %d", id, resp.StatusCode)
	}
	return resp, nil
}

func itemPath(id string) string {
	return "/" + Resource + "/" + url.PathEscape(id)
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("catalog: encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	if encoded != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, body, err := executor.ExecuteRequest(c.httpClient, req)
	if err != nil {
		return nil, err
	}
	return decode(resp.StatusCode, body)
}

func decode(status int, body []byte) (*Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w (status %d)", ErrInvalidJSON, status)
	}
	return &Response{StatusCode: status, Body: gjson.ParseBytes(body), Raw: body}, nil
}
