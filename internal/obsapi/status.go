package obsapi

import (
	"bytes"
	"errors"
	"strings"

	"github.com/osc-go/obsapi/internal/httpx"
	"github.com/osc-go/obsapi/internal/xmlx"
)

// StatusSummary extracts the details the API server includes in the body of
// failed responses, which look like this:
//
//	<status code="unknown_package">
//	  <summary>hello</summary>
//	</status>
//
// The ok return value is false when err is not an [*httpx.ErrRequestFailed]
// or its body is not such a document.
func StatusSummary(err error) (code, summary string, ok bool) {
	var failure *httpx.ErrRequestFailed
	if !errors.As(err, &failure) || len(failure.Body) <= 0 {
		return "", "", false
	}
	root, perr := xmlx.Parse(bytes.NewReader(failure.Body), &xmlx.ParseSettings{Permissive: true})
	if perr != nil || root.FullTag() != "status" {
		return "", "", false
	}
	code = root.SelectAttrValue("code", "")
	if node := FindNode(root, "status", "summary"); node != nil {
		summary = strings.TrimSpace(node.Text())
	}
	return code, summary, true
}
