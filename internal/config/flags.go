package config

import (
	"errors"
	"flag"
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

// dirList collects a repeatable directory flag.
type dirList []string

func (d *dirList) String() string {
	return strings.Join(*d, ",")
}

func (d *dirList) Set(s string) error {
	for _, dir := range strings.Split(s, ",") {
		if dir = strings.TrimSpace(dir); dir != "" {
			*d = append(*d, dir)
		}
	}
	return nil
}

// ParseFlags parses the command-line arguments in args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-base-url URL prefix the routes are served under
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with server settings
//	-extension-name extension name
//	-package-json path to the front-end package.json
//	-app-version version exposed at /version
//	-log-level minimal log level
//	-token static server token
//	-token-sign-key bearer token signing key
//	-token-issuer bearer token issuer
//	-config-dir configuration directory, repeatable or comma separated
//	-prefix environment prefix searched for etc/jupyter
//	-search-order last-listed-first or first-listed-first
//	-load-mode startup, request or watch
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var baseURL string
	var requestTimeout time.Duration
	var jsonConfigPath string
	var extensionName string
	var packageJSONPath string
	var version string
	var logLevel string
	var token string
	var tokenSignKey string
	var tokenIssuer string
	var configDirs dirList
	var prefix string
	var searchOrder string
	var loadMode string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&baseURL, "base-url", "", "URL prefix the routes are served under")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&extensionName, "extension-name", "", "Extension name")
	fs.StringVar(&packageJSONPath, "package-json", "", "Path to the front-end package.json")
	fs.StringVar(&version, "app-version", "", "Version exposed at /version")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&token, "token", "", "Static server token")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.Var(&configDirs, "config-dir", "Configuration directory (repeatable)")
	fs.StringVar(&prefix, "prefix", "", "Environment prefix")
	fs.StringVar(&searchOrder, "search-order", "", "last-listed-first or first-listed-first")
	fs.StringVar(&loadMode, "load-mode", "", "startup, request or watch")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ExtensionName:   extensionName,
			PackageJSONPath: packageJSONPath,
			Version:         version,
			LogLevel:        logLevel,
			Token:           token,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Search: Search{
			ConfigDirs: configDirs,
			Prefix:     prefix,
			Order:      searchOrder,
			LoadMode:   loadMode,
		},
		JSONFilePath: jsonConfigPath,
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
