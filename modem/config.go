package modem

import (
	"log/slog"
	"time"
)

// DefaultTimeout is the fetch deadline used when neither the Config nor the
// Fetch call sets one.
const DefaultTimeout = 15 * time.Second

// Config holds the settings a Session is opened with. Use NewConfigBuilder to
// assemble one.
type Config struct {
	dialer  Dialer
	timeout time.Duration
	logger  *slog.Logger
	now     func() time.Time
}

func (c *Config) validate() error {
	if c.dialer == nil {
		return ErrNoDialer
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
}

// ConfigBuilder assembles a Config step by step.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithDialer sets how the transport is opened. Required.
func (b *ConfigBuilder) WithDialer(d Dialer) *ConfigBuilder {
	b.config.dialer = d
	return b
}

// WithTimeout sets the fetch deadline used when Fetch is given none.
func (b *ConfigBuilder) WithTimeout(d time.Duration) *ConfigBuilder {
	b.config.timeout = d
	return b
}

func (b *ConfigBuilder) WithLogger(l *slog.Logger) *ConfigBuilder {
	b.config.logger = l
	return b
}

// WithClock replaces time.Now for measuring elapsed time.
func (b *ConfigBuilder) WithClock(now func() time.Time) *ConfigBuilder {
	b.config.now = now
	return b
}

// Build validates the configuration and fills in defaults.
func (b *ConfigBuilder) Build() (Config, error) {
	c := b.config
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	c.setDefaults()
	return c, nil
}
