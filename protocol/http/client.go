package http

import (
	M "github.com/sagernet/sing-http/common/metadata"
)

const DefaultUserAgent = "Go-http-client/1.1"

type ConnectOptions struct {
	Proxy       ProxyOptions
	Destination M.Socksaddr
	Path        string
	UserAgent   string
	Headers     *Headers
}

// ConnectHeaders assembles the header block of a CONNECT request through
// options.Proxy. The first caller header of a given name replaces a default
// of that name in place, later ones are appended. options.Headers is not
// modified.
func ConnectHeaders(options ConnectOptions) *Headers {
	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	headers := NewHeaders(
		Header{"Host", options.Destination.String()},
		Header{"User-Agent", userAgent},
		Header{"Proxy-Connection", "Keep-Alive"},
	)
	replaced := make(map[string]bool)
	options.Headers.Range(func(header Header) bool {
		key := headerKey(header.Name)
		if replaced[key] {
			headers.Add(header.Name, header.Value)
		} else {
			replaced[key] = true
			headers.Set(header.Name, header.Value)
		}
		return true
	})
	if options.Path != "" {
		headers.Set("Path", options.Path)
	}
	if authorization, loaded := options.Proxy.ProxyAuthorization(); loaded {
		headers.Set("Proxy-Authorization", authorization)
	}
	return headers
}

func ConnectRequestLine(destination M.Socksaddr, version HTTPVersion) string {
	if version == HTTPVersionUnknown {
		version = HTTPVersion1_1
	}
	return "CONNECT " + destination.String() + " " + version.String()
}
