package http

type HTTPVersion uint8

const (
	HTTPVersionUnknown HTTPVersion = iota
	HTTPVersion1_0
	HTTPVersion1_1
	HTTPVersion2
)

func (v HTTPVersion) String() string {
	switch v {
	case HTTPVersion1_0:
		return "HTTP/1.0"
	case HTTPVersion1_1:
		return "HTTP/1.1"
	case HTTPVersion2:
		return "HTTP/2"
	default:
		return "unknown"
	}
}

func ParseHTTPVersion(version string) HTTPVersion {
	switch version {
	case "HTTP/1.0", "1.0":
		return HTTPVersion1_0
	case "HTTP/1.1", "1.1":
		return HTTPVersion1_1
	case "HTTP/2", "HTTP/2.0", "2", "2.0", "h2":
		return HTTPVersion2
	default:
		return HTTPVersionUnknown
	}
}
