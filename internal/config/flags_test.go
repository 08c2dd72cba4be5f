package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
		{
			name:     "IPv6 is bracketed",
			addr:     NetAddress{Host: "::1", Port: 8080},
			expected: "[::1]:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErr      error
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "valid IPv6",
			input:        "[::1]:9090",
			expectedAddr: NetAddress{Host: "::1", Port: 9090},
		},
		{
			name:         "empty host listens on all interfaces",
			input:        ":8080",
			expectedAddr: NetAddress{Host: "", Port: 8080},
		},
		{name: "missing colon", input: "localhost8080", wantErr: errAddressFormat},
		{name: "non numeric port", input: "localhost:http", wantErr: errPortRange},
		{name: "zero port", input: "localhost:0", wantErr: errPortRange},
		{name: "port out of range", input: "localhost:70000", wantErr: errPortRange},
		{name: "hostname is not an IP", input: "example.com:8080", wantErr: errHostNotIP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, NetAddress{}, addr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestParseFlags(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		cfg, err := ParseFlags([]string{
			"-a", "127.0.0.1:8080",
			"-d", "postgres://localhost/tube",
			"-config", "/etc/go-tube.json",
			"-public-url", "https://tube.example.com",
			"-jwks-url", "https://clerk.example.com/jwks",
			"-token-sign-key", "secret",
			"-token-issuer", "issuer",
			"-request-timeout", "15s",
			"-mux-webhook-secret", "mux",
			"-user-webhook-secret", "whsec_abc",
			"-bucket", "thumbs",
			"-redis", "localhost:6379",
			"-brokers", "k1:9092,k2:9092",
		})

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
		assert.Equal(t, "postgres://localhost/tube", cfg.Storage.DB.DSN)
		assert.Equal(t, "/etc/go-tube.json", cfg.JSONFilePath)
		assert.Equal(t, "https://tube.example.com", cfg.Server.PublicURL)
		assert.Equal(t, "https://clerk.example.com/jwks", cfg.App.JWKSURL)
		assert.Equal(t, "secret", cfg.App.TokenSignKey)
		assert.Equal(t, "issuer", cfg.App.TokenIssuer)
		assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "mux", cfg.App.MuxWebhookSecret)
		assert.Equal(t, "whsec_abc", cfg.App.UserWebhookSecret)
		assert.Equal(t, "thumbs", cfg.Storage.Objects.Bucket)
		assert.Equal(t, "localhost:6379", cfg.Storage.Cache.Addr)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)
	})

	t.Run("short config alias", func(t *testing.T) {
		cfg, err := ParseFlags([]string{"-c", "cfg.json"})

		require.NoError(t, err)
		assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	})

	t.Run("no flags", func(t *testing.T) {
		cfg, err := ParseFlags(nil)

		require.NoError(t, err)
		assert.Equal(t, "", cfg.Server.HTTPAddress)
		assert.Nil(t, cfg.Events.Brokers)
	})

	t.Run("brokers with blanks", func(t *testing.T) {
		cfg, err := ParseFlags([]string{"-brokers", " k1:9092, ,k2:9092,"})

		require.NoError(t, err)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := ParseFlags([]string{"-a", "nope"})
		require.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := ParseFlags([]string{"-unknown"})
		require.Error(t, err)
	})
}
