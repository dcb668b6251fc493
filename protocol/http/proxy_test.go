package http_test

import (
	"testing"

	M "github.com/sagernet/sing-http/common/metadata"
	"github.com/sagernet/sing-http/protocol/http"

	"github.com/stretchr/testify/require"
)

func TestProxyOptionsDefaults(t *testing.T) {
	t.Parallel()
	options := http.NewProxyOptions("proxy.example.com", 8080)
	require.Equal(t, "proxy.example.com", options.HostName)
	require.Equal(t, uint16(8080), options.Port)
	require.Equal(t, http.ProxyAuthenticationNone, options.AuthMethod)
	require.Nil(t, options.AuthUsername)
	require.Nil(t, options.AuthPassword)
	require.NoError(t, options.Validate())

	_, loaded := options.ProxyAuthorization()
	require.False(t, loaded)
}

func TestProxyOptionsBasicAuth(t *testing.T) {
	t.Parallel()
	options := http.NewProxyOptions("10.0.0.1", 3128, http.WithBasicAuth("Aladdin", "open sesame"))
	require.Equal(t, http.ProxyAuthenticationBasic, options.AuthMethod)
	require.Equal(t, "Aladdin", *options.AuthUsername)
	require.Equal(t, "open sesame", *options.AuthPassword)
	require.NoError(t, options.Validate())

	authorization, loaded := options.ProxyAuthorization()
	require.True(t, loaded)
	require.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", authorization)
	require.Equal(t, M.ParseSocksaddr("10.0.0.1:3128"), options.ServerAddr())
}

func TestProxyOptionsEmptyCredentials(t *testing.T) {
	t.Parallel()
	options := http.NewProxyOptions("proxy", 80, http.WithBasicAuth("", ""))
	require.NoError(t, options.Validate())
	authorization, loaded := options.ProxyAuthorization()
	require.True(t, loaded)
	require.Equal(t, "Basic Og==", authorization)
}

func TestProxyOptionsValidate(t *testing.T) {
	t.Parallel()
	username := "user"
	for _, testCase := range []struct {
		name     string
		options  http.ProxyOptions
		expected []error
	}{
		{
			name:     "missing host",
			options:  http.ProxyOptions{Port: 80},
			expected: []error{http.ErrMissingHost},
		},
		{
			name:     "bad host",
			options:  http.ProxyOptions{HostName: "proxy host", Port: 80},
			expected: []error{http.ErrInvalidHost},
		},
		{
			name:     "zero port",
			options:  http.ProxyOptions{HostName: "proxy"},
			expected: []error{http.ErrInvalidPort},
		},
		{
			name: "basic without password",
			options: http.ProxyOptions{
				HostName:     "proxy",
				Port:         80,
				AuthMethod:   http.ProxyAuthenticationBasic,
				AuthUsername: &username,
			},
			expected: []error{http.ErrMissingCredentials},
		},
		{
			name:     "unknown method",
			options:  http.ProxyOptions{HostName: "proxy", Port: 80, AuthMethod: 7},
			expected: []error{http.ErrUnknownAuthMethod},
		},
		{
			name:     "everything wrong",
			options:  http.ProxyOptions{AuthMethod: http.ProxyAuthenticationBasic},
			expected: []error{http.ErrMissingHost, http.ErrInvalidPort, http.ErrMissingCredentials},
		},
	} {
		err := testCase.options.Validate()
		require.Error(t, err, testCase.name)
		for _, expected := range testCase.expected {
			require.ErrorIs(t, err, expected, testCase.name)
		}
	}
}

func TestProxyAuthenticationTypeString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "none", http.ProxyAuthenticationNone.String())
	require.Equal(t, "basic", http.ProxyAuthenticationBasic.String())
	require.Equal(t, "unknown(9)", http.ProxyAuthenticationType(9).String())
}
