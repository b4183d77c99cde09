package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/models"
)

// record guards one account so that different accounts never contend.
type record struct {
	mu      sync.Mutex
	account *models.Account
}

// InMemoryRepository keeps accounts for the lifetime of the process.
type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*record
	hasher   cryptox.PasswordHasher
	now      func() time.Time
}

// NewInMemoryRepository returns an empty repository that digests passwords
// with hasher.
func NewInMemoryRepository(hasher cryptox.PasswordHasher) *InMemoryRepository {
	return &InMemoryRepository{
		accounts: make(map[string]*record),
		hasher:   hasher,
		now:      time.Now,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, userName string, password []byte) error {
	if r.exists(userName) {
		return common.ErrorAlreadyExists
	}

	verifier, err := r.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// re-check: another caller may have registered while we were hashing
	if _, ok := r.accounts[userName]; ok {
		return common.ErrorAlreadyExists
	}
	r.accounts[userName] = &record{account: models.NewAccount(userName, verifier, r.now())}
	return nil
}

func (r *InMemoryRepository) VerifyPassword(ctx context.Context, userName string, password []byte) (bool, error) {
	rec, err := r.get(userName)
	if err != nil {
		return false, err
	}

	rec.mu.Lock()
	verifier := rec.account.Verifier
	rec.mu.Unlock()

	return r.hasher.Verify(verifier, password), nil
}

func (r *InMemoryRepository) PutEntry(ctx context.Context, userName, key string, entry *models.Entry) error {
	rec, err := r.get(userName)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.account.PutEntry(key, entry)
	return nil
}

func (r *InMemoryRepository) GetEntry(ctx context.Context, userName, key string) (*models.Entry, error) {
	rec, err := r.get(userName)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	e, ok := rec.account.Entry(key)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return e, nil
}

func (r *InMemoryRepository) ListKeys(ctx context.Context, userName string) ([]string, error) {
	rec, err := r.get(userName)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	return rec.account.Keys(), nil
}

func (r *InMemoryRepository) exists(userName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.accounts[userName]
	return ok
}

func (r *InMemoryRepository) get(userName string) (*record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.accounts[userName]
	if !ok {
		return nil, common.ErrorNoSuchUser
	}
	return rec, nil
}
