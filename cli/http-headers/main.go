package main

import (
	"fmt"
	"io"
	"strings"

	E "github.com/sagernet/sing-http/common/exceptions"
	"github.com/sagernet/sing-http/common/log"
	M "github.com/sagernet/sing-http/common/metadata"
	"github.com/sagernet/sing-http/conf"
	"github.com/sagernet/sing-http/protocol/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	envFile    string
	proxy      string
	user       string
	path       string
	userAgent  string
	logLevel   string
	add        []string
	set        []string
	remove     []string
}

func main() {
	if err := newCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newCommand() *cobra.Command {
	var o options
	command := &cobra.Command{
		Use:           "http-headers [flags] destination:port",
		Short:         "Print the CONNECT request headers sent through an HTTP proxy",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), o, args[0])
		},
	}
	flags := command.Flags()
	flags.StringVarP(&o.configPath, "config", "c", "", "json config file")
	flags.StringVar(&o.envFile, "env", "", "dotenv file with proxy credentials")
	flags.StringVarP(&o.proxy, "proxy", "x", "", "proxy server host:port, overrides server and port from the config")
	flags.StringVarP(&o.user, "user", "u", "", "basic auth user:password")
	flags.StringVar(&o.path, "path", "", "Path header value")
	flags.StringVarP(&o.userAgent, "user-agent", "A", "", "User-Agent header value")
	flags.StringVar(&o.logLevel, "log-level", "", "log level")
	flags.StringArrayVarP(&o.add, "header", "H", nil, "add a header, \"Name: value\"")
	flags.StringArrayVar(&o.set, "set", nil, "replace a header, \"Name: value\"")
	flags.StringArrayVar(&o.remove, "remove", nil, "remove a header by name")
	return command
}

func run(output io.Writer, o options, target string) error {
	config := new(conf.Config)
	if o.configPath != "" {
		var err error
		config, err = conf.ReadConfig(o.configPath)
		if err != nil {
			return err
		}
	}
	logLevel := config.LogLevel
	if o.logLevel != "" {
		logLevel = o.logLevel
	}
	err := log.SetLevel(logLevel)
	if err != nil {
		return err
	}
	logger := log.NewLogger("http-headers")

	var proxyConfig conf.ProxyConfig
	if config.Proxy != nil {
		proxyConfig = *config.Proxy
	} else if o.proxy == "" {
		return E.New("missing proxy, use --proxy or a config file")
	}
	if o.proxy != "" {
		server := M.ParseSocksaddr(o.proxy)
		if !server.IsValid() {
			return E.New("bad proxy address: ", o.proxy)
		}
		proxyConfig.Server = server.AddrString()
		proxyConfig.ServerPort = int(server.Port)
	}
	if o.user != "" {
		username, password, found := strings.Cut(o.user, ":")
		if !found {
			return E.New("bad user ", o.user, `, expected "user:password"`)
		}
		proxyConfig.Auth = "basic"
		proxyConfig.Username = &username
		proxyConfig.Password = &password
	}
	err = proxyConfig.ApplyEnvironment(o.envFile)
	if err != nil {
		return err
	}
	proxyOptions, err := proxyConfig.Build()
	if err != nil {
		return err
	}

	destination := M.ParseSocksaddr(target)
	if !destination.IsValid() || destination.Port == 0 {
		return E.New("bad destination: ", target)
	}

	headers := config.Headers.Build()
	err = applyHeaderFlags(headers, o)
	if err != nil {
		return err
	}
	connectHeaders := http.ConnectHeaders(http.ConnectOptions{
		Proxy:       proxyOptions,
		Destination: destination,
		Path:        o.path,
		UserAgent:   o.userAgent,
		Headers:     headers,
	})
	flattened := connectHeaders.Flatten()
	err = http.ValidHeaders(flattened)
	if err != nil {
		logger.Error("refusing to print invalid headers")
		return err
	}
	logger.Debug("proxy ", proxyOptions.ServerAddr(), " auth ", proxyOptions.AuthMethod, ", ", len(flattened), " headers")

	_, err = fmt.Fprintln(output, http.ConnectRequestLine(destination, http.HTTPVersion1_1))
	if err != nil {
		return err
	}
	for _, header := range flattened {
		_, err = fmt.Fprintf(output, "%s: %s\n", header.Name, header.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func applyHeaderFlags(headers *http.Headers, o options) error {
	for _, line := range o.add {
		name, value, err := parseHeaderLine(line)
		if err != nil {
			return err
		}
		headers.Add(name, value)
	}
	for _, line := range o.set {
		name, value, err := parseHeaderLine(line)
		if err != nil {
			return err
		}
		headers.Set(name, value)
	}
	for _, name := range o.remove {
		headers.Remove(name)
	}
	return nil
}

func parseHeaderLine(line string) (name string, value string, err error) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", E.New("bad header ", line, `, expected "Name: value"`)
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), nil
}
