package testingx

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestCloseVerify(t *testing.T) {
	server := MustNewHTTPServer(HTTPHandlerStatus(200, "<about/>"))
	defer server.Close()

	t.Run("we detect a body we did not close", func(t *testing.T) {
		cv := &CloseVerify{}
		clnt := cv.WrapHTTPClient(http.DefaultClient)
		resp, err := clnt.Do(mustNewGET(t, server.URL))
		if err != nil {
			t.Fatal(err)
		}
		err = cv.CheckForOpenBodies()
		if err == nil || !strings.HasSuffix(err.Error(), "has not been closed") {
			t.Fatal("unexpected error", err)
		}
		resp.Body.Close()
		if err := cv.CheckForOpenBodies(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("closing twice is fine", func(t *testing.T) {
		cv := &CloseVerify{}
		clnt := cv.WrapHTTPClient(http.DefaultClient)
		resp, err := clnt.Do(mustNewGET(t, server.URL))
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "<about/>" {
			t.Fatal("unexpected body", string(data))
		}
		resp.Body.Close()
		resp.Body.Close()
		if err := cv.CheckForOpenBodies(); err != nil {
			t.Fatal(err)
		}
	})
}

func mustNewGET(t *testing.T, URL string) *http.Request {
	req, err := http.NewRequest("GET", URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}
