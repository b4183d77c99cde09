// Package accounts provides the credential store: registered accounts with
// their password verifiers and encrypted entries.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/models"
)

// Repository stores accounts and their entries. Entries are opaque
// ciphertext and salt; the repository never sees keys or plaintext.
//
// Errors:
//   - Create returns common.ErrorAlreadyExists for a taken username.
//   - Every other method returns common.ErrorNoSuchUser for an unknown username.
//   - GetEntry returns common.ErrorNotFound for an unknown key.
type Repository interface {
	Create(ctx context.Context, userName string, password []byte) error
	VerifyPassword(ctx context.Context, userName string, password []byte) (bool, error)
	PutEntry(ctx context.Context, userName, key string, entry *models.Entry) error
	GetEntry(ctx context.Context, userName, key string) (*models.Entry, error)
	ListKeys(ctx context.Context, userName string) ([]string, error)
}
