package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// stringList is a comma separated flag.Value.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-api client API address, [host]:[port] or URL
//	-d database DSN (postgres URL or sqlite file)
//	-f launcher config.toml path
//	-registry UI registry file path
//	-prefs client preferences file path
//	-c/-config JSON or YAML file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-token client bearer token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-origins comma separated CORS origins
//	-rate-limit requests per minute per client IP
//	-skip-path-check do not check that path fields exist
//	-reconcile-interval UI registry reconcile interval
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress     NetAddress
		apiAddress        string
		databaseDSN       string
		configPath        string
		registryPath      string
		preferencesPath   string
		configFilePath    string
		tokenSignKey      string
		tokenIssuer       string
		tokenDuration     time.Duration
		token             string
		requestTimeout    time.Duration
		origins           stringList
		rateLimit         int
		skipPathCheck     bool
		reconcileInterval time.Duration
	)

	fs := flag.NewFlagSet("config-sets", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiAddress, "api", "", "API address host:port or URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "f", "", "Launcher config.toml path")
	fs.StringVar(&registryPath, "registry", "", "UI registry file path")
	fs.StringVar(&preferencesPath, "prefs", "", "Client preferences file path")
	fs.StringVar(&configFilePath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&configFilePath, "config", "", "JSON/YAML config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&token, "token", "", "Bearer token used by the client")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&origins, "origins", "Comma separated CORS origins")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Requests per minute per client IP")
	fs.BoolVar(&skipPathCheck, "skip-path-check", false, "Do not check that path fields exist")
	fs.DurationVar(&reconcileInterval, "reconcile-interval", 0, "UI registry reconcile interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ConfigPath:      configPath,
				RegistryPath:    registryPath,
				PreferencesPath: preferencesPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: origins,
			RateLimit:      rateLimit,
			SkipPathCheck:  skipPathCheck,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Workers: Workers{
			ReconcileInterval: reconcileInterval,
		},
		ConfigFilePath: configFilePath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. The host must be "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
