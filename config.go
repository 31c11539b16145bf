package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// SerialPort is the path to the modem's serial port (e.g. "/dev/ttyS0")
	SerialPort string `yaml:"serial_port"`
	// BaudRate is the baud rate for serial communication with the modem (e.g. 9600)
	BaudRate int `yaml:"baud_rate"`
	// ReadTimeout bounds a single one-byte read from the serial port
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// FetchTimeout is the deadline for one command, from write to result
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string `yaml:"log_level"`
	// BindAddress enables the HTTP query server when set (e.g. "0.0.0.0:8080")
	BindAddress string `yaml:"bind_address"`
	// MQTT configures publishing of outcomes; disabled when Broker is empty
	MQTT MQTTConfig `yaml:"mqtt"`
}

// MQTTConfig holds the settings of the outcome publisher
type MQTTConfig struct {
	// Broker is the broker URL (e.g. "tcp://localhost:1883")
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.SerialPort = "/dev/ttyS0"
		c.BaudRate = 9600
		c.ReadTimeout = 15 * time.Second
		c.FetchTimeout = 15 * time.Second
		c.LogLevel = "info"
		c.MQTT.Topic = "gsmquery/outcome"
		return nil
	}
}

// WithFile overlays the YAML file at path. An empty path is a no-op.
func WithFile(path string) ConfigOption {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return fmt.Errorf("parse config file %s: %w", path, err)
		}
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.BaudRate = b
			}
		}

		if rt := os.Getenv("READ_TIMEOUT"); rt != "" {
			if d, err := time.ParseDuration(rt); err == nil {
				c.ReadTimeout = d
			}
		}

		if ft := os.Getenv("FETCH_TIMEOUT"); ft != "" {
			if d, err := time.ParseDuration(ft); err == nil {
				c.FetchTimeout = d
			}
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
			c.BindAddress = addr
		}

		if broker := os.Getenv("MQTT_BROKER"); broker != "" {
			c.MQTT.Broker = broker
		}
		if topic := os.Getenv("MQTT_TOPIC"); topic != "" {
			c.MQTT.Topic = topic
		}
		if id := os.Getenv("MQTT_CLIENT_ID"); id != "" {
			c.MQTT.ClientID = id
		}
		if user := os.Getenv("MQTT_USERNAME"); user != "" {
			c.MQTT.Username = user
		}
		if pass := os.Getenv("MQTT_PASSWORD"); pass != "" {
			c.MQTT.Password = pass
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.BaudRate = b
				}
			case "read-timeout":
				if d, err := time.ParseDuration(f.Value.String()); err == nil {
					c.ReadTimeout = d
				}
			case "timeout":
				if d, err := time.ParseDuration(f.Value.String()); err == nil {
					c.FetchTimeout = d
				}
			case "log-level":
				c.LogLevel = f.Value.String()
			case "bind-address":
				c.BindAddress = f.Value.String()
			case "mqtt-broker":
				c.MQTT.Broker = f.Value.String()
			case "mqtt-topic":
				c.MQTT.Topic = f.Value.String()
			}

		})
		return nil
	}

}
