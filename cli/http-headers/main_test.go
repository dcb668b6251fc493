package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sagernet/sing-http/conf"
	"github.com/sagernet/sing-http/protocol/http"

	"github.com/stretchr/testify/require"
)

func clearProxyEnv(t *testing.T) {
	for _, key := range []string{conf.EnvProxyUsername, conf.EnvProxyPassword} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	var output bytes.Buffer
	command := newCommand()
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetArgs(args)
	err := command.Execute()
	return output.String(), err
}

func TestRunFlags(t *testing.T) {
	clearProxyEnv(t)
	output, err := execute(t,
		"--proxy", "proxy.example.com:8080",
		"--user", "user:pass",
		"-H", "X-Count: 1",
		"-H", "Accept: */*",
		"-H", "x-count: 2",
		"--set", "X-Count: 3",
		"--remove", "accept",
		"example.com:443",
	)
	require.NoError(t, err)
	require.Equal(t, "CONNECT example.com:443 HTTP/1.1\n"+
		"Host: example.com:443\n"+
		"User-Agent: "+http.DefaultUserAgent+"\n"+
		"Proxy-Connection: Keep-Alive\n"+
		"X-Count: 3\n"+
		"Proxy-Authorization: Basic dXNlcjpwYXNz\n", output)
}

func TestRunConfig(t *testing.T) {
	clearProxyEnv(t)
	path := writeConfig(t, `{
		"proxy": {"server": "10.0.0.1", "server_port": 3128},
		"headers": [["User-Agent", "sing-http"], ["X-Trace", "abc"]]
	}`)
	output, err := execute(t, "-c", path, "--path", "/ws", "10.1.1.1:22")
	require.NoError(t, err)
	require.Equal(t, "CONNECT 10.1.1.1:22 HTTP/1.1\n"+
		"Host: 10.1.1.1:22\n"+
		"User-Agent: sing-http\n"+
		"Proxy-Connection: Keep-Alive\n"+
		"X-Trace: abc\n"+
		"Path: /ws\n", output)
}

func TestRunProxyFlagKeepsConfigAuth(t *testing.T) {
	clearProxyEnv(t)
	path := writeConfig(t, `{
		"proxy": {"server": "10.0.0.1", "server_port": 3128, "auth": "basic", "username": "user", "password": "pass"}
	}`)
	output, err := execute(t, "-c", path, "--proxy", "proxy.example.com:8080", "example.com:443")
	require.NoError(t, err)
	require.Contains(t, output, "Proxy-Authorization: Basic dXNlcjpwYXNz\n")
}

func TestRunUsernameFromEnvWithoutPassword(t *testing.T) {
	clearProxyEnv(t)
	t.Setenv(conf.EnvProxyUsername, "user")
	_, err := execute(t, "--proxy", "proxy:8080", "example.com:443")
	require.ErrorIs(t, err, http.ErrMissingCredentials)
}

func TestRunErrors(t *testing.T) {
	clearProxyEnv(t)
	_, err := execute(t, "example.com:443")
	require.ErrorContains(t, err, "missing proxy")

	_, err = execute(t, "--proxy", "proxy:0", "example.com:443")
	require.ErrorIs(t, err, http.ErrInvalidPort)

	_, err = execute(t, "--proxy", "proxy:8080", "example.com")
	require.ErrorContains(t, err, "bad destination")

	_, err = execute(t, "--proxy", "proxy:8080", "--user", "user", "example.com:443")
	require.ErrorContains(t, err, "bad user")

	_, err = execute(t, "--proxy", "proxy:8080", "-H", "no colon", "example.com:443")
	require.ErrorContains(t, err, "bad header")

	_, err = execute(t, "--proxy", "proxy:8080", "-H", "Bad Name: x", "example.com:443")
	require.ErrorIs(t, err, http.ErrInvalidHeaderName)
}
