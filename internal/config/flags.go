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

// ParseFlags parses the wallet configuration flags from args and returns the
// positional arguments left over (the sub-command, if any).
//
// Flags:
//
//	-a control API address in format [host]:[port]
//	-k KERIA admin URL
//	-boot KERIA boot URL
//	-d database DSN (":memory:" for in-memory stores)
//	-c/-config json file path with configs
//	-passcode KERIA passcode (bran)
//	-password password sealing the passcode
//	-identifier-version identifier name version tag
//	-request-timeout KERIA request timeout (e.g., "30s")
//	-oobi-timeout synchronous OOBI resolution timeout (e.g., "5s")
//	-poll-interval pending operation poll interval
//	-sync-interval reconciliation interval
//	-reconnect-interval KERIA reconnect interval
//	-log-level log level
//	-log-file rotating log file path
//	-api-token bearer token required by the control API
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var keriaURL, keriaBootURL string
	var databaseDSN string
	var jsonConfigPath string
	var passcode, password string
	var identifierVersion string
	var requestTimeout, oobiTimeout time.Duration
	var pollInterval, syncInterval, reconnectInterval time.Duration
	var logLevel, logFile string
	var apiToken string

	fs := flag.NewFlagSet("wallet", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Control API address host:port")
	fs.StringVar(&keriaURL, "k", "", "KERIA admin URL")
	fs.StringVar(&keriaBootURL, "boot", "", "KERIA boot URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passcode, "passcode", "", "KERIA passcode")
	fs.StringVar(&password, "password", "", "Password sealing the KERIA passcode")
	fs.StringVar(&identifierVersion, "identifier-version", "", "Identifier name version tag")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "KERIA request timeout (e.g., 30s)")
	fs.DurationVar(&oobiTimeout, "oobi-timeout", 0, "OOBI resolution timeout (e.g., 5s)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Pending operation poll interval")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Reconciliation interval")
	fs.DurationVar(&reconnectInterval, "reconnect-interval", 0, "KERIA reconnect interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Rotating log file path")
	fs.StringVar(&apiToken, "api-token", "", "Control API bearer token")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{
			IdentifierVersion: identifierVersion,
			Passcode:          passcode,
			Password:          password,
		},
		Keria: Keria{
			URL:                keriaURL,
			BootURL:            keriaBootURL,
			RequestTimeout:     requestTimeout,
			OobiResolveTimeout: oobiTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
			APIToken:    apiToken,
		},
		Workers: Workers{
			OperationPollInterval: pollInterval,
			SyncInterval:          syncInterval,
			ReconnectInterval:     reconnectInterval,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
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
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
