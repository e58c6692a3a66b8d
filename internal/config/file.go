package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the configuration file. The
// same layout is accepted as JSON and as YAML.
type StructuredFileConfig struct {
	App struct {
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	// ApplicationPort is a shorthand for a loopback HTTP listener on the
	// given port. Ignored when server.http_address is set.
	ApplicationPort int `json:"application_port" yaml:"application_port"`

	Database struct {
		DSN          string `json:"dsn" yaml:"dsn"`
		Username     string `json:"username" yaml:"username"`
		Password     string `json:"password" yaml:"password"`
		Host         string `json:"host" yaml:"host"`
		Port         int    `json:"port" yaml:"port"`
		DatabaseName string `json:"database_name" yaml:"database_name"`
		SSLMode      string `json:"ssl_mode" yaml:"ssl_mode"`
	} `json:"database,omitempty" yaml:"database,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		GRPCAddress     string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Telemetry struct {
		Enabled      bool   `json:"enabled" yaml:"enabled"`
		ServiceName  string `json:"service_name" yaml:"service_name"`
		OTLPEndpoint string `json:"otlp_endpoint" yaml:"otlp_endpoint"`
	} `json:"telemetry,omitempty" yaml:"telemetry,omitempty"`
}

// parseFile reads the configuration file at path, choosing the decoder by
// extension: .json for JSON, .yaml/.yml for YAML.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructuredConfig(), nil
}

func (f *StructuredFileConfig) toStructuredConfig() *StructuredConfig {
	httpAddress := f.Server.HTTPAddress
	if httpAddress == "" && f.ApplicationPort != 0 {
		httpAddress = net.JoinHostPort("127.0.0.1", strconv.Itoa(f.ApplicationPort))
	}

	return &StructuredConfig{
		App: App{
			Version:  f.App.Version,
			LogLevel: f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          f.Database.DSN,
				Username:     f.Database.Username,
				Password:     f.Database.Password,
				Host:         f.Database.Host,
				Port:         f.Database.Port,
				DatabaseName: f.Database.DatabaseName,
				SSLMode:      f.Database.SSLMode,
			},
		},
		Server: Server{
			HTTPAddress:     httpAddress,
			GRPCAddress:     f.Server.GRPCAddress,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Telemetry: Telemetry{
			Enabled:      f.Telemetry.Enabled,
			ServiceName:  f.Telemetry.ServiceName,
			OTLPEndpoint: f.Telemetry.OTLPEndpoint,
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" as well as from integer
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
