package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/flagx"
	"github.com/dmitrijs2005/gophvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from an explicit zero, which matters for the
// durations where 0 means "disabled".
type JsonConfig struct {
	KDFIterations   *int            `json:"kdf_iterations"`
	Cipher          *string         `json:"cipher"`
	PasswordHash    *string         `json:"password_hash"`
	MaxAttempts     *int            `json:"max_attempts"`
	LockoutCooldown *timex.Duration `json:"lockout_cooldown"`
	SessionTTL      *timex.Duration `json:"session_ttl"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Without that flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.KDFIterations != nil {
		cfg.KDFIterations = *jc.KDFIterations
	}
	if jc.Cipher != nil {
		cfg.Cipher = *jc.Cipher
	}
	if jc.PasswordHash != nil {
		cfg.PasswordHash = *jc.PasswordHash
	}
	if jc.MaxAttempts != nil {
		cfg.MaxAttempts = *jc.MaxAttempts
	}
	if jc.LockoutCooldown != nil {
		cfg.LockoutCooldown = jc.LockoutCooldown.Duration
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
