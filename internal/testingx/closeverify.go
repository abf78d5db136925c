package testingx

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/osc-go/obsapi/internal/model"
	"github.com/osc-go/obsapi/internal/runtimex"
)

// CloseVerify verifies that we're closing all response bodies.
//
// The zero value of this struct is ready to use.
type CloseVerify struct {
	mu     sync.Mutex
	bodies map[string]io.Closer
	count  int
}

func (cv *CloseVerify) addBody(key string, closer io.Closer) {
	defer cv.mu.Unlock()
	cv.mu.Lock()
	if cv.bodies == nil {
		cv.bodies = make(map[string]io.Closer)
	}
	_, good := cv.bodies[key]
	runtimex.Assert(!good, fmt.Sprintf("we're already tracking: %s", key))
	cv.bodies[key] = closer
}

func (cv *CloseVerify) removeBody(key string) {
	defer cv.mu.Unlock()
	cv.mu.Lock()
	_, good := cv.bodies[key]
	runtimex.Assert(good, fmt.Sprintf("we're not tracking: %s", key))
	delete(cv.bodies, key)
}

func (cv *CloseVerify) nextKey(req *http.Request) string {
	defer cv.mu.Unlock()
	cv.mu.Lock()
	cv.count++
	return fmt.Sprintf("#%d %s %s", cv.count, req.Method, req.URL.String())
}

// CheckForOpenBodies returns an error if we still have some open response bodies.
func (cv *CloseVerify) CheckForOpenBodies() error {
	defer cv.mu.Unlock()
	cv.mu.Lock()
	var errorv []error
	for key := range cv.bodies {
		errorv = append(errorv, fmt.Errorf("%s has not been closed", key))
	}
	return errors.Join(errorv...) // returns nil if empty
}

// WrapHTTPClient returns a [model.HTTPClient] that communicates
// response body open and close events to the [*CloseVerify] struct.
func (cv *CloseVerify) WrapHTTPClient(clnt model.HTTPClient) model.HTTPClient {
	return &closeVerifyHTTPClient{
		HTTPClient: clnt,
		cv:         cv,
	}
}

type closeVerifyHTTPClient struct {
	model.HTTPClient
	cv *CloseVerify
}

// Do implements model.HTTPClient.
func (c *closeVerifyHTTPClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	key := c.cv.nextKey(req)
	body := &closeVerifyBody{
		ReadCloser: resp.Body,
		cv:         c.cv,
		key:        key,
		once:       sync.Once{},
	}
	c.cv.addBody(key, body)
	resp.Body = body
	return resp, nil
}

type closeVerifyBody struct {
	io.ReadCloser
	cv   *CloseVerify
	key  string
	once sync.Once
}

func (c *closeVerifyBody) Close() (err error) {
	c.once.Do(func() {
		c.cv.removeBody(c.key)
		err = c.ReadCloser.Close()
	})
	return
}
