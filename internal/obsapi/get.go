package obsapi

//
// get.go - GET an XML document.
//

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/beevik/etree"
	"github.com/dustin/go-humanize"
	"github.com/osc-go/obsapi/internal/httpx"
	"github.com/osc-go/obsapi/internal/model"
	"github.com/osc-go/obsapi/internal/runtimex"
	"github.com/osc-go/obsapi/internal/urlx"
	"github.com/osc-go/obsapi/internal/xmlx"
)

// ErrValidation is the error wrapped by all the errors returned when the
// arguments passed to [Get] are not valid.
var ErrValidation = errors.New("obsapi: invalid argument")

var (
	// ErrEmptyAPIURL indicates that the API URL is empty.
	ErrEmptyAPIURL = fmt.Errorf("%w: empty API URL", ErrValidation)

	// ErrEmptyPath indicates that there are no path segments.
	ErrEmptyPath = fmt.Errorf("%w: path must contain at least one segment", ErrValidation)
)

// Get sends a GET request and parses the XML response body.
//
// Arguments:
//
// - ctx is the cancellable context;
//
// - config is the config to use;
//
// - apiurl is the API URL (e.g., "https://api.opensuse.org");
//
// - path contains the path segments, which MUST NOT be empty;
//
// - query contains the OPTIONAL query.
//
// This function either returns an error or the root of the parsed document. We
// check the arguments before performing any I/O and return errors wrapping
// [ErrValidation] on failure. Transport and parse errors are returned as is.
//
// This function panics if config or config.Client is nil.
func Get(ctx context.Context, config *Config,
	apiurl string, path []string, query url.Values) (*etree.Element, error) {
	runtimex.Assert(config != nil, "obsapi: nil config")
	runtimex.PanicIfNil(config.Client, "obsapi: nil config.Client")
	if apiurl == "" {
		return nil, ErrEmptyAPIURL
	}
	if len(path) <= 0 {
		return nil, ErrEmptyPath
	}

	URL, err := urlx.MakeURL(apiurl, path, query)
	if err != nil {
		return nil, err
	}
	logger := model.ValidLoggerOrDefault(config.Logger)
	logger.Debugf("obsapi: GET %s", URL)

	client := &httpx.APIClient{
		HTTPClient: config.Client,
		Logger:     logger,
		UserAgent:  config.userAgent(),
	}
	body, err := client.GetStream(ctx, URL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	counter := &countingReader{r: body}
	root, err := xmlx.Parse(counter, config.ParseSettings)
	if err != nil {
		return nil, err
	}
	logger.Debugf("obsapi: parsed %s response with root <%s>",
		humanize.Bytes(uint64(counter.n)), root.FullTag())
	return root, nil
}

// countingReader counts the bytes read from the underlying reader.
type countingReader struct {
	n int64
	r io.Reader
}

func (cr *countingReader) Read(b []byte) (int, error) {
	count, err := cr.r.Read(b)
	cr.n += int64(count)
	return count, err
}
