package model

//
// Common HTTP definitions.
//

import "net/http"

const (
	// HTTPHeaderAcceptXML is the Accept header used when fetching API documents.
	HTTPHeaderAcceptXML = "application/xml"
)

// HTTPClient is an [*http.Client] like structure.
type HTTPClient interface {
	// Do sends the request and returns the response.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes the idle connections.
	CloseIdleConnections()
}
