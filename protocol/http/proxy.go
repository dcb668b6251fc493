package http

import (
	"encoding/base64"
	"strconv"

	E "github.com/sagernet/sing-http/common/exceptions"
	M "github.com/sagernet/sing-http/common/metadata"
)

var (
	ErrMissingHost        = E.New("missing proxy host")
	ErrInvalidHost        = E.New("invalid proxy host")
	ErrInvalidPort        = E.New("proxy port out of range 1-65535")
	ErrMissingCredentials = E.New("basic proxy auth requires username and password")
	ErrUnknownAuthMethod  = E.New("unknown proxy auth method")
)

type ProxyAuthenticationType uint8

const (
	ProxyAuthenticationNone ProxyAuthenticationType = iota
	ProxyAuthenticationBasic
)

func (t ProxyAuthenticationType) String() string {
	switch t {
	case ProxyAuthenticationNone:
		return "none"
	case ProxyAuthenticationBasic:
		return "basic"
	default:
		return "unknown(" + strconv.Itoa(int(t)) + ")"
	}
}

// ProxyOptions describes how to reach an HTTP proxy. It is a plain record:
// nothing is checked when it is built, see Validate.
type ProxyOptions struct {
	HostName     string
	Port         uint16
	AuthMethod   ProxyAuthenticationType
	AuthUsername *string
	AuthPassword *string
}

type ProxyOption func(options *ProxyOptions)

func WithBasicAuth(username, password string) ProxyOption {
	return func(options *ProxyOptions) {
		options.AuthMethod = ProxyAuthenticationBasic
		options.AuthUsername = &username
		options.AuthPassword = &password
	}
}

func NewProxyOptions(hostName string, port uint16, options ...ProxyOption) ProxyOptions {
	proxyOptions := ProxyOptions{
		HostName: hostName,
		Port:     port,
	}
	for _, option := range options {
		option(&proxyOptions)
	}
	return proxyOptions
}

func (o ProxyOptions) ServerAddr() M.Socksaddr {
	return M.ParseSocksaddrHostPort(o.HostName, o.Port)
}

// ProxyAuthorization returns the Proxy-Authorization value for Basic auth.
// Missing credentials are encoded as empty strings.
func (o ProxyOptions) ProxyAuthorization() (string, bool) {
	if o.AuthMethod != ProxyAuthenticationBasic {
		return "", false
	}
	var username, password string
	if o.AuthUsername != nil {
		username = *o.AuthUsername
	}
	if o.AuthPassword != nil {
		password = *o.AuthPassword
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)), true
}

// Validate reports every problem with the record at once.
func (o ProxyOptions) Validate() error {
	var errorList []error
	server := o.ServerAddr()
	if o.HostName == "" {
		errorList = append(errorList, ErrMissingHost)
	} else if !server.IsIP() && !M.IsDomainName(server.Fqdn) {
		errorList = append(errorList, E.Extend(ErrInvalidHost, o.HostName))
	}
	if o.Port == 0 {
		errorList = append(errorList, ErrInvalidPort)
	}
	switch o.AuthMethod {
	case ProxyAuthenticationNone:
	case ProxyAuthenticationBasic:
		if o.AuthUsername == nil || o.AuthPassword == nil {
			errorList = append(errorList, ErrMissingCredentials)
		}
	default:
		errorList = append(errorList, E.Extend(ErrUnknownAuthMethod, o.AuthMethod))
	}
	return E.Errors(errorList...)
}
