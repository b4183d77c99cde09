// Package config loads runtime configuration for the GophVault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-k int      PBKDF2 iterations for entry keys (>= 100000)
//	-e string   entry cipher: aes-gcm | xchacha20-poly1305
//	-p string   login password hash: argon2id | sha256
//	-m int      consecutive failures before lockout
//	-l int      login lockout cooldown (seconds, 0 disables)
//	-t int      session lifetime (minutes, 0 disables)
//	-v string   log level: debug | info | warn | error
//	-f string   log format: text | json
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "30s" or
// integer nanoseconds. Omitted keys keep their previous value:
//
//	{
//	  "kdf_iterations": 100000,
//	  "cipher": "aes-gcm",
//	  "password_hash": "argon2id",
//	  "max_attempts": 3,
//	  "lockout_cooldown": "30s",
//	  "session_ttl": "168h",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// Malformed JSON or flags cause a panic, as for any other startup
// misconfiguration; semantic checks are done by (*Config).Validate.
package config
