package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// An empty Host means all interfaces. It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args (without the program name) into a partial
// configuration. Unset flags stay at their zero value so they do not
// override other sources when merged.
//
// Flags:
//
//	-a server address in format [host]:port
//	-env environment label
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-body-size request body ceiling in bytes
//	-rate-rps per-client request rate, 0 disables limiting
//	-rate-burst per-client burst size
//	-db-driver user backend: memory, postgres or sqlite
//	-d database DSN
//	-c/-config json file path with configs
//
// Secrets have no flags; command lines are visible to other processes.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var appEnv string
	var requestTimeout time.Duration
	var maxBodySize int64
	var rateRPS float64
	var rateBurst int
	var dbDriver string
	var databaseDSN string
	var jsonConfigPath string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&appEnv, "env", "", "Environment label")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodySize, "max-body-size", 0, "Request body ceiling in bytes")
	fs.Float64Var(&rateRPS, "rate-rps", 0, "Per-client requests per second, 0 disables limiting")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Per-client burst size")
	fs.StringVar(&dbDriver, "db-driver", "", "User backend: memory, postgres or sqlite")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env: appEnv,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodySize:    maxBodySize,
			RateLimitRPS:   rateRPS,
			RateLimitBurst: rateBurst,
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

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless host
// is empty or "localhost", and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
