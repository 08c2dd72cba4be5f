package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server's command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-public-url externally reachable base URL
//	-jwks-url identity provider JWKS endpoint
//	-token-sign-key token verification key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mux-webhook-secret video webhook signing secret
//	-user-webhook-secret user webhook signing secret
//	-bucket object storage bucket
//	-redis redis address
//	-brokers comma separated kafka brokers
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-tube-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var publicURL string
	var jwksURL string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var muxWebhookSecret string
	var userWebhookSecret string
	var bucket string
	var redisAddr string
	var brokers string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&publicURL, "public-url", "", "Externally reachable base URL")
	fs.StringVar(&jwksURL, "jwks-url", "", "Identity provider JWKS URL")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&muxWebhookSecret, "mux-webhook-secret", "", "Video webhook signing secret")
	fs.StringVar(&userWebhookSecret, "user-webhook-secret", "", "User webhook signing secret")
	fs.StringVar(&bucket, "bucket", "", "Object storage bucket")
	fs.StringVar(&redisAddr, "redis", "", "Redis address host:port")
	fs.StringVar(&brokers, "brokers", "", "Comma separated Kafka brokers")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			JWKSURL:           jwksURL,
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			MuxWebhookSecret:  muxWebhookSecret,
			UserWebhookSecret: userWebhookSecret,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Objects: Objects{
				Bucket: bucket,
			},
			Cache: Cache{
				Addr: redisAddr,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			PublicURL:      publicURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}

	for _, broker := range strings.Split(brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.Events.Brokers = append(cfg.Events.Brokers, broker)
		}
	}

	return cfg, nil
}

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port must be between 1 and 65535")
	errHostNotIP     = errors.New("host must be localhost or an IP address")
)

// String returns host:port, bracketing IPv6 hosts. A zero NetAddress
// renders as "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty, localhost or a literal
// IPv4/IPv6 address; names are not resolved at flag parsing time.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("%w: %q", errPortRange, rawPort)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q", errHostNotIP, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
