// internal/common/http/client.go
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// SchemaContentType is the Accept value sent when fetching schema documents.
const SchemaContentType = "application/schema+json"

// ErrUnexpectedStatus marks a response outside the 2xx range. Callers map it
// to their stage-specific failure message.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// ErrDecode marks a body that could not be decoded as JSON. Status failures
// rank above decode failures in batch error reporting.
var ErrDecode = errors.New("response body is not valid JSON")

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

func (c *Client) DoWithContext(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)
	return c.httpClient.Do(req)
}

// GetJSON issues a GET request and decodes the body as JSON. A non-empty
// accept value is sent as the Accept header. A response outside the 2xx range
// returns an error wrapping ErrUnexpectedStatus; the body is not decoded in
// that case.
func (c *Client) GetJSON(ctx context.Context, url, accept string) (interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	var body interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, url, err)
	}
	return body, nil
}
