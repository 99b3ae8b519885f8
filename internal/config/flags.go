package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds an API base URL given on the command line.
// It implements the flag.Value interface.
type BaseURL struct {
	raw string
}

// String returns the URL as it was set.
func (u *BaseURL) String() string {
	return u.raw
}

// Set accepts "host[:port]" or "scheme://host[:port][/path]" and rejects
// values without a host.
func (u *BaseURL) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("empty address")
	}

	probe := s
	if !strings.Contains(probe, "://") {
		probe = "https://" + probe
	}

	parsed, err := url.Parse(probe)
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}
	if parsed.Host == "" {
		return errors.New("address must contain a host")
	}

	u.raw = s
	return nil
}

// parseFlags parses the client flags from args.
//
// Flags:
//
//	-a               API base URL
//	-t               request timeout (e.g. "10s")
//	-d               sqlite token database path
//	-log-file        log file path
//	-c/-config       JSON config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("rate-keeper", flag.ContinueOnError)

	var apiAddress BaseURL
	var requestTimeout time.Duration
	var databaseDSN string
	var logFile string
	var jsonConfigPath string

	fs.Var(&apiAddress, "a", "API base URL")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&databaseDSN, "d", "", "Token database path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
