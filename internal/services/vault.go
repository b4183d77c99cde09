// Package services contains the vault core. VaultService implements the
// register/login/logout/store/retrieve/list state machine on top of the
// credential store, the attempt limiter and the cryptox primitives.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/limiter"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	"github.com/dmitrijs2005/gophvault/internal/repositories/accounts"
)

// VaultService is the command surface offered to the presentation layer.
//
// Contract:
//   - Register creates an account; it never touches a session.
//   - Login binds the session on success. Failures leave it unchanged and
//     return common.ErrorNoSuchUser, a *common.AttemptsError wrapping
//     common.ErrorWrongPassword, or common.ErrorLockedOut.
//   - Logout, Store, Retrieve and List require an authenticated session and
//     return common.ErrorNotAuthenticated otherwise, without side effects.
//   - Retrieve returns common.ErrorNotFound for a missing key, a
//     *common.AttemptsError wrapping common.ErrorWrongPasskey when the
//     passkey does not open the entry, and common.ErrorLockedOut once the
//     attempt budget is spent, in which case the session is logged out.
type VaultService interface {
	Register(ctx context.Context, userName string, password []byte) error
	Login(ctx context.Context, s *Session, userName string, password []byte) error
	Logout(ctx context.Context, s *Session) error
	Store(ctx context.Context, s *Session, key, value string, passkey []byte) error
	Retrieve(ctx context.Context, s *Session, key string, passkey []byte) (string, error)
	List(ctx context.Context, s *Session) ([]string, error)
	CurrentUser(ctx context.Context, s *Session) (string, bool)
}

// Option customizes the vault service.
type Option func(*vaultService)

// WithSessionTTL expires sessions ttl after login. Zero disables expiry.
func WithSessionTTL(ttl time.Duration) Option {
	return func(v *vaultService) { v.sessionTTL = ttl }
}

// WithClock replaces the time source; used by tests.
func WithClock(now func() time.Time) Option {
	return func(v *vaultService) { v.now = now }
}

type vaultService struct {
	repo       accounts.Repository
	limiter    *limiter.Limiter
	kdf        cryptox.KDF
	cipher     cryptox.Cipher
	logger     logging.Logger
	locks      *userLocks
	sessionTTL time.Duration
	now        func() time.Time
}

// NewVaultService wires the vault core together.
func NewVaultService(repo accounts.Repository, lim *limiter.Limiter, kdf cryptox.KDF, c cryptox.Cipher,
	logger logging.Logger, opts ...Option) VaultService {
	v := &vaultService{
		repo:    repo,
		limiter: lim,
		kdf:     kdf,
		cipher:  c,
		logger:  logger.With("component", "vault"),
		locks:   newUserLocks(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

func (v *vaultService) Register(ctx context.Context, userName string, password []byte) error {
	if err := v.repo.Create(ctx, userName, password); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			v.logger.Info(ctx, "registration rejected: username taken", "username", userName)
			return err
		}
		return fmt.Errorf("error creating account: %w", err)
	}

	v.limiter.Reset(userName)
	v.logger.Info(ctx, "account registered", "username", userName)
	return nil
}

func (v *vaultService) Login(ctx context.Context, s *Session, userName string, password []byte) error {
	unlock := v.locks.lock(userName)
	defer unlock()

	log := v.logger.With("username", userName, "session_id", s.ID())

	if locked, left := v.limiter.Locked(userName); locked {
		log.Warn(ctx, "login refused: account locked", "retry_after", left)
		return fmt.Errorf("%w: retry in %s", common.ErrorLockedOut, left.Round(time.Second))
	}

	ok, err := v.repo.VerifyPassword(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrorNoSuchUser) {
			log.Info(ctx, "login failed: no such user")
			return err
		}
		return fmt.Errorf("error verifying password: %w", err)
	}

	if !ok {
		remaining := v.limiter.OnFailure(userName)
		if remaining <= 0 {
			log.Warn(ctx, "account locked after failed logins")
			return common.ErrorLockedOut
		}
		log.Info(ctx, "login failed: wrong password", "remaining", remaining)
		return &common.AttemptsError{Err: common.ErrorWrongPassword, Remaining: remaining}
	}

	v.limiter.OnSuccess(userName)
	s.bind(userName, v.now())
	log.Info(ctx, "login succeeded")
	return nil
}

func (v *vaultService) Logout(ctx context.Context, s *Session) error {
	userName, unlock, err := v.acquire(ctx, s)
	if err != nil {
		return err
	}
	defer unlock()

	s.clearIf(userName)
	v.logger.Info(ctx, "logged out", "username", userName, "session_id", s.ID())
	return nil
}

func (v *vaultService) Store(ctx context.Context, s *Session, key, value string, passkey []byte) error {
	userName, unlock, err := v.acquire(ctx, s)
	if err != nil {
		return err
	}
	defer unlock()

	dataKey, salt, err := v.kdf.Derive(passkey, nil)
	if err != nil {
		return fmt.Errorf("error deriving key: %w", err)
	}
	defer common.WipeByteArray(dataKey)

	ciphertext, err := v.cipher.Seal(dataKey, []byte(value))
	if err != nil {
		return fmt.Errorf("error encrypting entry: %w", err)
	}

	entry := &models.Entry{Ciphertext: ciphertext, Salt: salt, UpdatedAt: v.now()}
	if err := v.repo.PutEntry(ctx, userName, key, entry); err != nil {
		return fmt.Errorf("error saving entry: %w", err)
	}

	v.logger.Debug(ctx, "entry stored", "username", userName, "session_id", s.ID(), "key", key)
	return nil
}

func (v *vaultService) Retrieve(ctx context.Context, s *Session, key string, passkey []byte) (string, error) {
	userName, unlock, err := v.acquire(ctx, s)
	if err != nil {
		return "", err
	}
	defer unlock()

	log := v.logger.With("username", userName, "session_id", s.ID(), "key", key)

	entry, err := v.repo.GetEntry(ctx, userName, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", err
		}
		return "", fmt.Errorf("error loading entry: %w", err)
	}

	dataKey, _, err := v.kdf.Derive(passkey, entry.Salt)
	if err != nil {
		log.Error(ctx, "stored salt rejected by kdf", "error", err)
		return "", common.ErrorInternal
	}
	defer common.WipeByteArray(dataKey)

	plaintext, err := v.cipher.Open(dataKey, entry.Ciphertext)
	if err != nil {
		// wrong passkey and corrupted ciphertext are deliberately indistinguishable
		remaining := v.limiter.OnFailure(userName)
		if remaining <= 0 {
			v.limiter.Reset(userName)
			s.clearIf(userName)
			log.Warn(ctx, "session terminated after failed passkey attempts")
			return "", common.ErrorLockedOut
		}
		log.Info(ctx, "retrieve failed: wrong passkey", "remaining", remaining)
		return "", &common.AttemptsError{Err: common.ErrorWrongPasskey, Remaining: remaining}
	}
	defer common.WipeByteArray(plaintext)

	v.limiter.OnSuccess(userName)
	return string(plaintext), nil
}

func (v *vaultService) List(ctx context.Context, s *Session) ([]string, error) {
	userName, unlock, err := v.acquire(ctx, s)
	if err != nil {
		return nil, err
	}
	defer unlock()

	keys, err := v.repo.ListKeys(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return keys, nil
}

func (v *vaultService) CurrentUser(ctx context.Context, s *Session) (string, bool) {
	userName, err := v.authenticated(ctx, s)
	return userName, err == nil
}

// authenticated returns the username bound to s, expiring the session first
// if it has outlived the TTL.
func (v *vaultService) authenticated(ctx context.Context, s *Session) (string, error) {
	userName, boundAt, ok := s.state()
	if !ok {
		return "", common.ErrorNotAuthenticated
	}

	if v.sessionTTL > 0 && v.now().Sub(boundAt) > v.sessionTTL {
		if s.clearIf(userName) {
			v.logger.Info(ctx, "session expired", "username", userName, "session_id", s.ID())
		}
		return "", fmt.Errorf("session expired: %w", common.ErrorNotAuthenticated)
	}
	return userName, nil
}

// acquire checks the session, takes the per-user lock and re-checks that
// the session was not logged out while waiting for it.
func (v *vaultService) acquire(ctx context.Context, s *Session) (string, func(), error) {
	userName, err := v.authenticated(ctx, s)
	if err != nil {
		return "", nil, err
	}

	unlock := v.locks.lock(userName)
	if current, ok := s.UserName(); !ok || current != userName {
		unlock()
		return "", nil, common.ErrorNotAuthenticated
	}
	return userName, unlock, nil
}
