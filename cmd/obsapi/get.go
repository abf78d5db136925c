package main

//
// get subcommand
//

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/osc-go/obsapi/internal/obsapi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// getFlags contains the flags of the get subcommand.
type getFlags struct {
	apiurl    string
	query     []string
	timeout   time.Duration
	userAgent string
	selectFlags
}

func newGetCommand(stdout io.Writer) *cobra.Command {
	gf := &getFlags{}
	cmd := &cobra.Command{
		Use:   "get [flags] SEGMENT...",
		Short: "GET an API resource and print the selected nodes",
		Example: `  obsapi get source openSUSE:Factory _meta --find title
  obsapi get build home:alice _result --query package=hello --find-all result`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return gf.run(cmd.Context(), stdout, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&gf.apiurl, "apiurl", envOr("OBSAPI_APIURL", defaultAPIURL), "API URL (env: OBSAPI_APIURL)")
	flags.StringArrayVarP(&gf.query, "query", "q", nil, "query parameter as key=value (repeatable)")
	flags.DurationVar(&gf.timeout, "timeout", defaultTimeout, "timeout of the whole HTTP exchange")
	flags.StringVar(&gf.userAgent, "user-agent", envOr("OBSAPI_USER_AGENT", obsapi.DefaultUserAgent), "User-Agent header (env: OBSAPI_USER_AGENT)")
	gf.selectFlags.register(cmd)
	return cmd
}

func (gf *getFlags) run(ctx context.Context, stdout io.Writer, path []string) error {
	query, err := parseQuery(gf.query)
	if err != nil {
		return err
	}

	clnt := &http.Client{Timeout: gf.timeout}
	defer clnt.CloseIdleConnections()
	config := &obsapi.Config{
		Client:    clnt,
		Logger:    log.Log,
		UserAgent: gf.userAgent,
	}

	root, err := obsapi.Get(ctx, config, gf.apiurl, path, query)
	if err != nil {
		if code, summary, ok := obsapi.StatusSummary(err); ok {
			log.WithField("code", code).Warnf("server says: %s", summary)
		}
		return errors.Wrapf(err, "cannot get /%s", strings.Join(path, "/"))
	}
	return gf.selectFlags.emit(stdout, root)
}

// parseQuery converts key=value pairs into [url.Values].
func parseQuery(pairs []string) (url.Values, error) {
	query := url.Values{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, errors.Errorf("invalid query parameter %q: expected key=value", pair)
		}
		query.Add(key, value)
	}
	return query, nil
}
