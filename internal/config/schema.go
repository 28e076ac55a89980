// Package config loads and validates stressd's configuration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Defaults applied before any file or flag.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 5000
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

// Config is the root configuration.
//
// Example YAML:
//
//	server:
//	  host: 0.0.0.0
//	  port: 5000
//	  readHeaderTimeout: 5s
//	  idleTimeout: 2m
//	log:
//	  level: info
//	  format: text
type Config struct {
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`
	Log    LogConfig    `json:"log" yaml:"log" toml:"log"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Host is the interface to bind; 0.0.0.0 listens on all of them
	Host string `json:"host" yaml:"host" toml:"host"`

	// Port is the TCP port; 0 picks a free one
	Port int `json:"port" yaml:"port" toml:"port"`

	// ReadHeaderTimeout bounds how long a client may take to send headers
	ReadHeaderTimeout Duration `json:"readHeaderTimeout,omitempty" yaml:"readHeaderTimeout,omitempty" toml:"readHeaderTimeout,omitempty"`

	// IdleTimeout bounds keep-alive connections between requests
	IdleTimeout Duration `json:"idleTimeout,omitempty" yaml:"idleTimeout,omitempty" toml:"idleTimeout,omitempty"`
}

// Addr returns host:port suitable for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig controls operational logging.
type LogConfig struct {
	Level  string `json:"level" yaml:"level" toml:"level"`
	Format string `json:"format" yaml:"format" toml:"format"`
}

// Default returns a Config populated with the defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              DefaultHost,
			Port:              DefaultPort,
			ReadHeaderTimeout: Duration(DefaultReadHeaderTimeout),
			IdleTimeout:       Duration(DefaultIdleTimeout),
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Duration is a time.Duration that can be decoded from "30s" style strings
// in JSON, YAML and TOML.
type Duration time.Duration

// GetDuration returns the duration or a default if empty.
func (d Duration) GetDuration(defaultValue time.Duration) time.Duration {
	if d == 0 {
		return defaultValue
	}
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" {
		s = ""
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; TOML decodes through it.
func (d *Duration) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = 0
		return nil
	}
	dur, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
