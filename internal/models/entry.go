package models

import (
	"bytes"
	"time"
)

// Entry is one encrypted secret. Ciphertext is the nonce-prefixed AEAD
// output; Salt is the KDF salt the data key was derived with. Both are
// replaced together whenever the entry is overwritten.
type Entry struct {
	Ciphertext []byte
	Salt       []byte
	UpdatedAt  time.Time
}

// Clone returns a deep copy of e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	return &Entry{
		Ciphertext: bytes.Clone(e.Ciphertext),
		Salt:       bytes.Clone(e.Salt),
		UpdatedAt:  e.UpdatedAt,
	}
}
