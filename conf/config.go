package conf

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	E "github.com/sagernet/sing-http/common/exceptions"
	"github.com/sagernet/sing-http/common/log"
	"github.com/sagernet/sing-http/protocol/http"

	"github.com/joho/godotenv"
)

const (
	EnvProxyUsername = "HTTP_PROXY_USERNAME"
	EnvProxyPassword = "HTTP_PROXY_PASSWORD"
)

var logger = log.NewLogger("conf")

type Config struct {
	Proxy    *ProxyConfig `json:"proxy,omitempty"`
	Headers  HeaderList   `json:"headers,omitempty"`
	LogLevel string       `json:"log_level,omitempty"`
}

type ProxyConfig struct {
	Server     string  `json:"server"`
	ServerPort int     `json:"server_port"`
	Auth       string  `json:"auth,omitempty"`
	Username   *string `json:"username,omitempty"`
	Password   *string `json:"password,omitempty"`
}

func ReadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, E.Cause(err, "read config")
	}
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	var config Config
	err = decoder.Decode(&config)
	if err != nil {
		return nil, E.Cause(err, "decode config ", path)
	}
	return &config, nil
}

func ParseAuthMethod(method string) (http.ProxyAuthenticationType, error) {
	switch strings.ToLower(method) {
	case "", "none":
		return http.ProxyAuthenticationNone, nil
	case "basic":
		return http.ProxyAuthenticationBasic, nil
	default:
		return 0, E.Extend(http.ErrUnknownAuthMethod, method)
	}
}

func (c ProxyConfig) Build() (http.ProxyOptions, error) {
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return http.ProxyOptions{}, E.Extend(http.ErrInvalidPort, c.ServerPort)
	}
	method, err := ParseAuthMethod(c.Auth)
	if err != nil {
		return http.ProxyOptions{}, err
	}
	options := http.ProxyOptions{
		HostName:     c.Server,
		Port:         uint16(c.ServerPort),
		AuthMethod:   method,
		AuthUsername: c.Username,
		AuthPassword: c.Password,
	}
	err = options.Validate()
	if err != nil {
		return http.ProxyOptions{}, E.Cause(err, "proxy ", c.Server)
	}
	return options, nil
}

// ApplyEnvironment fills unset credentials from the process environment,
// falling back to envFile when given. Variables already set in the process
// win over the file.
func (c *ProxyConfig) ApplyEnvironment(envFile string) error {
	var fileEnv map[string]string
	if envFile != "" {
		var err error
		fileEnv, err = godotenv.Read(envFile)
		if err != nil {
			return E.Cause(err, "read env file")
		}
	}
	lookup := func(key string) (string, bool) {
		if value, loaded := os.LookupEnv(key); loaded {
			return value, true
		}
		value, loaded := fileEnv[key]
		return value, loaded
	}
	if value, loaded := lookup(EnvProxyUsername); loaded && c.Username == nil {
		logger.Debug("username from ", EnvProxyUsername)
		c.Username = &value
	}
	if value, loaded := lookup(EnvProxyPassword); loaded && c.Password == nil {
		logger.Debug("password from ", EnvProxyPassword)
		c.Password = &value
	}
	if c.Auth == "" && c.Username != nil {
		c.Auth = "basic"
	}
	return nil
}
