// Package httpx contains http extensions.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/osc-go/obsapi/internal/model"
)

// DefaultMaxErrorBodySize is the maximum number of bytes of the response
// body we keep inside [*ErrRequestFailed].
const DefaultMaxErrorBodySize = 1 << 12

// APIClient is an extended HTTP client. To construct this APIClient, make
// sure you initialize all fields marked as MANDATORY.
type APIClient struct {
	// Accept contains the OPTIONAL accept header. When empty, we
	// use [model.HTTPHeaderAcceptXML].
	Accept string

	// HTTPClient is the MANDATORY underlying http client to use.
	HTTPClient model.HTTPClient

	// Logger is MANDATORY the logger to use.
	Logger model.DebugLogger

	// UserAgent is the OPTIONAL user agent to use.
	UserAgent string
}

// ErrRequestFailed indicates that the server returned a status
// code outside of the [200, 300) range.
type ErrRequestFailed struct {
	// StatusCode is the response status code.
	StatusCode int

	// Status is the response status line (e.g., "404 Not Found").
	Status string

	// Body contains the first bytes of the response body.
	Body []byte
}

var _ error = &ErrRequestFailed{}

// Error implements error.
func (err *ErrRequestFailed) Error() string {
	return fmt.Sprintf("httpx: request failed: %s", err.Status)
}

// newRequest creates a new GET request.
func (c *APIClient) newRequest(ctx context.Context, URL string) (*http.Request, error) {
	c.Logger.Debugf("httpx: method: GET")
	c.Logger.Debugf("httpx: URL: %s", URL)
	request, err := http.NewRequestWithContext(ctx, "GET", URL, nil)
	if err != nil {
		return nil, err
	}
	accept := c.Accept
	if accept == "" {
		accept = model.HTTPHeaderAcceptXML
	}
	request.Header.Set("Accept", accept)
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}
	return request, nil
}

// GetStream sends a GET request for URL and returns the response body as a
// stream. The caller MUST close the returned body. On failure, the body has
// already been closed and the returned stream is nil.
func (c *APIClient) GetStream(ctx context.Context, URL string) (io.ReadCloser, error) {
	request, err := c.newRequest(ctx, URL)
	if err != nil {
		return nil, err
	}
	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("httpx: response status: %s", response.Status)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		defer response.Body.Close()
		// the body is informational only, hence we ignore read errors
		body, _ := io.ReadAll(io.LimitReader(response.Body, DefaultMaxErrorBodySize))
		return nil, &ErrRequestFailed{
			StatusCode: response.StatusCode,
			Status:     response.Status,
			Body:       body,
		}
	}
	return response.Body, nil
}
