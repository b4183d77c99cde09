package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"golang.org/x/crypto/argon2"
)

// Supported password hash names.
const (
	HashSHA256   = "sha256"
	HashArgon2id = "argon2id"
)

// PasswordHasher produces and checks login verifiers. A verifier record is
// opaque to callers and only ever compared through Verify.
type PasswordHasher interface {
	Hash(password []byte) ([]byte, error)
	Verify(record, password []byte) bool
}

// NewPasswordHasher resolves a hasher by name.
func NewPasswordHasher(name string) (PasswordHasher, error) {
	switch name {
	case HashSHA256:
		return SHA256Hasher{}, nil
	case HashArgon2id:
		return NewArgon2idHasher(), nil
	default:
		return nil, fmt.Errorf("unknown password hash %q", name)
	}
}

// MakeVerifier returns the SHA-256 digest of secret.
func MakeVerifier(secret []byte) []byte {
	hash := sha256.Sum256(secret)
	return hash[:]
}

// SHA256Hasher stores an unsalted SHA-256 digest of the password.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password []byte) ([]byte, error) {
	return MakeVerifier(password), nil
}

func (SHA256Hasher) Verify(record, password []byte) bool {
	return subtle.ConstantTimeCompare(record, MakeVerifier(password)) == 1
}

// Argon2idHasher stores salt || argon2id(password, salt).
type Argon2idHasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// NewArgon2idHasher returns a hasher with the interactive-login parameters
// recommended by RFC 9106: one pass over 64 MiB with four lanes.
func NewArgon2idHasher() *Argon2idHasher {
	return &Argon2idHasher{Time: 1, Memory: 64 * 1024, Threads: 4}
}

func (h *Argon2idHasher) Hash(password []byte) ([]byte, error) {
	salt := common.GenerateRandByteArray(SaltSize)
	key := h.derive(password, salt)
	defer common.WipeByteArray(key)

	record := make([]byte, 0, SaltSize+KeySize)
	record = append(record, salt...)
	return append(record, key...), nil
}

func (h *Argon2idHasher) Verify(record, password []byte) bool {
	if len(record) != SaltSize+KeySize {
		return false
	}
	candidate := h.derive(password, record[:SaltSize])
	defer common.WipeByteArray(candidate)

	return subtle.ConstantTimeCompare(record[SaltSize:], candidate) == 1
}

func (h *Argon2idHasher) derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, h.Time, h.Memory, h.Threads, KeySize)
}
