// Package urlx contains URL extensions.
package urlx

import (
	"errors"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidAPIURL indicates that the API URL lacks a scheme or a host.
var ErrInvalidAPIURL = errors.New("urlx: invalid API URL")

// MakeURL joins the apiurl, the path segments, and the query into a single URL.
//
// The path of apiurl, if any, is kept and its trailing slash removed. Each
// segment is percent-encoded except for "/" and ":", which are kept as is so
// that a segment such as "source/home:user" addresses a nested resource.
//
// The query is appended only when non-empty and keys are sorted.
func MakeURL(apiurl string, path []string, query url.Values) (string, error) {
	base, err := url.Parse(apiurl)
	if err != nil {
		return "", err
	}
	if base.Scheme == "" || base.Host == "" {
		return "", ErrInvalidAPIURL
	}
	host, err := asciiHost(base.Host)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(base.Scheme)
	builder.WriteString("://")
	if base.User != nil {
		builder.WriteString(base.User.String())
		builder.WriteString("@")
	}
	builder.WriteString(host)
	builder.WriteString(strings.TrimRight(base.EscapedPath(), "/"))
	builder.WriteString("/")
	for idx, segment := range path {
		if idx > 0 {
			builder.WriteString("/")
		}
		builder.WriteString(QuoteSegment(segment))
	}
	if len(query) > 0 {
		builder.WriteString("?")
		builder.WriteString(query.Encode())
	}
	return builder.String(), nil
}

// QuoteSegment percent-encodes every byte of segment that is not an unreserved
// character, "/", or ":".
func QuoteSegment(segment string) string {
	const upperhex = "0123456789ABCDEF"
	var builder strings.Builder
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if isUnreserved(c) || c == '/' || c == ':' {
			builder.WriteByte(c)
			continue
		}
		builder.WriteByte('%')
		builder.WriteByte(upperhex[c>>4])
		builder.WriteByte(upperhex[c&15])
	}
	return builder.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	default:
		return false
	}
}

// asciiHost converts internationalized host names to punycode. Hosts
// that are already ASCII, including IP literals, are returned unchanged.
func asciiHost(hostport string) (string, error) {
	if isASCII(hostport) {
		return hostport, nil
	}
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host, port = hostport, ""
	}
	host, err = idna.Lookup.ToASCII(host)
	if err != nil {
		return "", err
	}
	if port != "" {
		return net.JoinHostPort(host, port), nil
	}
	return host, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
