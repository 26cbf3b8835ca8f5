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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health endpoint address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-seed enable seeding of the measurement store at startup
//	-seed-file path to a JSON file with seed measurements
//	-broker-url AMQP address of the measurement-event broker
//	-broker-queue queue name for published measurement events
//	-adapter-address service address used by the terminal client
//	-adapter-timeout outbound request timeout for the terminal client
//	-app-version application version reported by /api/version/
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var requestTimeout time.Duration
	var seedEnabled bool
	var seedFile string
	var brokerURL string
	var brokerQueue string
	var adapterAddress string
	var adapterTimeout time.Duration
	var appVersion string
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc health endpoint address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.BoolVar(&seedEnabled, "seed", false, "Seed the measurement store at startup")
	flag.StringVar(&seedFile, "seed-file", "", "JSON file with seed measurements")
	flag.StringVar(&brokerURL, "broker-url", "", "AMQP broker address")
	flag.StringVar(&brokerQueue, "broker-queue", "", "Queue for measurement events")
	flag.StringVar(&adapterAddress, "adapter-address", "", "Service address for the terminal client")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	flag.StringVar(&appVersion, "app-version", "", "Application version")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Seed: Seed{
			Enabled: seedEnabled,
			File:    seedFile,
		},
		Broker: Broker{
			URL:   brokerURL,
			Queue: brokerQueue,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that
// merging treats the flag as unset.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
