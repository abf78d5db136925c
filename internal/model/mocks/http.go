package mocks

import "net/http"

// HTTPClient allows mocking a model.HTTPClient.
type HTTPClient struct {
	MockDo func(req *http.Request) (*http.Response, error)

	MockCloseIdleConnections func()
}

// Do calls MockDo.
func (txp *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return txp.MockDo(req)
}

// CloseIdleConnections calls MockCloseIdleConnections.
func (txp *HTTPClient) CloseIdleConnections() {
	txp.MockCloseIdleConnections()
}

// ReadCloser allows mocking an [io.ReadCloser] such as an HTTP response body.
type ReadCloser struct {
	MockRead func(b []byte) (int, error)

	MockClose func() error
}

// Read calls MockRead.
func (rc *ReadCloser) Read(b []byte) (int, error) {
	return rc.MockRead(b)
}

// Close calls MockClose.
func (rc *ReadCloser) Close() error {
	return rc.MockClose()
}
