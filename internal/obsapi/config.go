package obsapi

import (
	"github.com/osc-go/obsapi/internal/model"
	"github.com/osc-go/obsapi/internal/version"
	"github.com/osc-go/obsapi/internal/xmlx"
)

// DefaultUserAgent is the User-Agent used when [Config] does not specify one.
const DefaultUserAgent = "obsapi/" + version.Version

// Config contains configuration for [Get].
//
// The zero value is invalid; initialize the MANDATORY fields.
type Config struct {
	// Client is the MANDATORY [model.HTTPClient] to use. Configure
	// timeouts on this client, since [Get] does not add any.
	Client model.HTTPClient

	// Logger is the MANDATORY [model.Logger] to use.
	Logger model.Logger

	// ParseSettings contains the OPTIONAL parser settings.
	ParseSettings *xmlx.ParseSettings

	// UserAgent is the OPTIONAL User-Agent header value to use.
	UserAgent string
}

func (c *Config) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return DefaultUserAgent
}
