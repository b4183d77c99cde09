package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/flagx"
)

var knownFlags = []string{"-k", "-e", "-p", "-m", "-l", "-t", "-v", "-f"}

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in knownFlags are considered (see flagx.FilterArgs), so -c/-config
// and anything else on the command line is left alone. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&cfg.KDFIterations, "k", cfg.KDFIterations, "PBKDF2 iterations for entry keys")
	fs.StringVar(&cfg.Cipher, "e", cfg.Cipher, "entry cipher (aes-gcm, xchacha20-poly1305)")
	fs.StringVar(&cfg.PasswordHash, "p", cfg.PasswordHash, "login password hash (argon2id, sha256)")
	fs.IntVar(&cfg.MaxAttempts, "m", cfg.MaxAttempts, "consecutive failures before lockout")
	cooldown := fs.Int("l", int(cfg.LockoutCooldown.Seconds()), "login lockout cooldown (in seconds)")
	ttl := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only explicit flags override durations, so sub-unit JSON values survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.LockoutCooldown = time.Duration(*cooldown) * time.Second
		case "t":
			cfg.SessionTTL = time.Duration(*ttl) * time.Minute
		}
	})
}
