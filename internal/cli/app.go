package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/config"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/limiter"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/repositories/accounts"
	"github.com/dmitrijs2005/gophvault/internal/services"
)

type App struct {
	config  *config.Config
	vault   services.VaultService
	session *services.Session
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp validates c and builds the vault core it describes. Logs go to
// stderr so they do not interleave with the menu on stdout.
func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}

	vault, err := newVault(c, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		vault:   vault,
		session: services.NewSession(),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func newVault(c *config.Config, logger logging.Logger) (services.VaultService, error) {
	hasher, err := cryptox.NewPasswordHasher(c.PasswordHash)
	if err != nil {
		return nil, err
	}
	cipher, err := cryptox.NewCipher(c.Cipher)
	if err != nil {
		return nil, err
	}

	return services.NewVaultService(
		accounts.NewInMemoryRepository(hasher),
		limiter.New(c.MaxAttempts, c.LockoutCooldown),
		cryptox.NewPBKDF2(c.KDFIterations),
		cipher,
		logger,
		services.WithSessionTTL(c.SessionTTL),
	), nil
}

// Run blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.logger.Debug(ctx, "cli started", "session_id", a.session.ID(), "cipher", a.config.Cipher,
		"password_hash", a.config.PasswordHash)
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.vault.CurrentUser(ctx, a.session)
	return ok
}
