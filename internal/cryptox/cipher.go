package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"golang.org/x/crypto/chacha20poly1305"
)

// Supported cipher names, as accepted by NewCipher and the config layer.
const (
	CipherAESGCM            = "aes-gcm"
	CipherXChaCha20Poly1305 = "xchacha20-poly1305"
)

// ErrDecryption is returned by Cipher.Open for any input that does not
// authenticate under the given key: wrong key, tampered or truncated data.
// The causes are intentionally not distinguished.
var ErrDecryption = errors.New("decryption failed")

var ErrUnknownCipher = errors.New("unknown cipher")

// Cipher performs authenticated encryption with a caller-provided key.
// Seal output layout is nonce || ciphertext || tag.
type Cipher interface {
	Seal(key, plaintext []byte) ([]byte, error)
	Open(key, ciphertext []byte) ([]byte, error)
}

type aeadCipher struct {
	name    string
	newAEAD func(key []byte) (cipher.AEAD, error)
}

// NewAESGCM returns an AES-GCM cipher; with 32-byte keys this is AES-256-GCM.
func NewAESGCM() Cipher {
	return &aeadCipher{name: CipherAESGCM, newAEAD: newAESGCM}
}

// NewXChaCha20Poly1305 returns an XChaCha20-Poly1305 cipher (24-byte nonces).
func NewXChaCha20Poly1305() Cipher {
	return &aeadCipher{name: CipherXChaCha20Poly1305, newAEAD: chacha20poly1305.NewX}
}

// NewCipher resolves a cipher by name.
func NewCipher(name string) (Cipher, error) {
	switch name {
	case CipherAESGCM:
		return NewAESGCM(), nil
	case CipherXChaCha20Poly1305:
		return NewXChaCha20Poly1305(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (c *aeadCipher) Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("%s init error: %w", c.name, err)
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *aeadCipher) Open(key, ciphertext []byte) ([]byte, error) {
	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, ErrDecryption
	}

	ns := aead.NonceSize()
	if len(ciphertext) < ns+aead.Overhead() {
		return nil, ErrDecryption
	}

	plaintext, err := aead.Open(nil, ciphertext[:ns], ciphertext[ns:], nil)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}
