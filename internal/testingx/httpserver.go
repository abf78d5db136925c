package testingx

import (
	"net"
	"net/http"
	"net/http/httptest"
)

// MustNewHTTPServer creates a new HTTP server using the given handler. The
// server listens on the loopback interface and the caller MUST Close it.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	return httptest.NewServer(handler)
}

// HTTPHandlerReset returns a handler that closes the connection without
// sending any response, causing the client to see a transport error.
func HTTPHandlerReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker, ok := w.(http.Hijacker)
		if !ok {
			panic("http.ResponseWriter is not an http.Hijacker")
		}
		conn, _, err := hijacker.Hijack()
		if err != nil {
			panic(err)
		}
		if tc, ok := conn.(*net.TCPConn); ok {
			tc.SetLinger(0)
		}
		conn.Close()
	})
}

// HTTPHandlerStatus returns a handler that replies with the given status
// code and the given body, using application/xml as the content type.
func HTTPHandlerStatus(code int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(code)
		w.Write([]byte(body))
	})
}
