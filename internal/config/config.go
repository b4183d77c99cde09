package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// MinKDFIterations is the lowest PBKDF2 work factor Validate accepts.
const MinKDFIterations = 100_000

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the vault core and the CLI.
type Config struct {
	KDFIterations   int
	Cipher          string
	PasswordHash    string
	MaxAttempts     int
	LockoutCooldown time.Duration
	SessionTTL      time.Duration
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.KDFIterations = cryptox.DefaultIterations
	c.Cipher = cryptox.CipherAESGCM
	c.PasswordHash = cryptox.HashArgon2id
	c.MaxAttempts = common.DefaultMaxAttempts
	c.LockoutCooldown = 30 * time.Second
	c.SessionTTL = 7 * 24 * time.Hour
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.KDFIterations < MinKDFIterations:
		return fmt.Errorf("%w: kdf iterations %d below minimum %d", ErrInvalidConfig, c.KDFIterations, MinKDFIterations)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfig, c.MaxAttempts)
	case c.LockoutCooldown < 0:
		return fmt.Errorf("%w: negative lockout cooldown", ErrInvalidConfig)
	case c.SessionTTL < 0:
		return fmt.Errorf("%w: negative session ttl", ErrInvalidConfig)
	}

	if _, err := cryptox.NewCipher(c.Cipher); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := cryptox.NewPasswordHasher(c.PasswordHash); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. The result is not validated.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
