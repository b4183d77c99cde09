package cryptox

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of every derived key, in bytes.
	KeySize = 32
	// SaltSize is the length of every generated salt, in bytes.
	SaltSize = 16
	// DefaultIterations is the PBKDF2 work factor used unless configured otherwise.
	DefaultIterations = 100_000
)

var ErrInvalidSalt = errors.New("invalid salt")

// KDF derives a fixed-length symmetric key from a passkey and a salt.
//
// When salt is nil a fresh random salt is generated and returned alongside
// the key. Equal (passkey, salt) pairs always yield equal keys.
type KDF interface {
	Derive(passkey, salt []byte) (key, usedSalt []byte, err error)
}

// PBKDF2 is a KDF backed by PBKDF2 with HMAC-SHA256.
type PBKDF2 struct {
	iterations int
}

// NewPBKDF2 returns a PBKDF2 KDF running the given number of iterations.
func NewPBKDF2(iterations int) *PBKDF2 {
	return &PBKDF2{iterations: iterations}
}

// Iterations reports the configured work factor.
func (k *PBKDF2) Iterations() int {
	return k.iterations
}

func (k *PBKDF2) Derive(passkey, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = common.GenerateRandByteArray(SaltSize)
	}
	if len(salt) != SaltSize {
		return nil, nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	key := pbkdf2.Key(passkey, salt, k.iterations, KeySize, sha256.New)
	return key, salt, nil
}
