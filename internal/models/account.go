// Package models defines the vault data model: accounts and their
// encrypted entries.
package models

import (
	"slices"
	"time"
)

// Account is a registered user and the entries it owns.
//
// UserName is case-sensitive and never changes. Verifier is an opaque
// password record produced by a cryptox.PasswordHasher. Account is not safe
// for concurrent use; the repository serializes access.
type Account struct {
	UserName  string
	Verifier  []byte
	CreatedAt time.Time

	entries map[string]*Entry
	keys    []string
}

// NewAccount returns an account with no entries.
func NewAccount(userName string, verifier []byte, createdAt time.Time) *Account {
	return &Account{
		UserName:  userName,
		Verifier:  verifier,
		CreatedAt: createdAt,
		entries:   make(map[string]*Entry),
	}
}

// PutEntry inserts or overwrites the entry stored under key. An overwrite
// keeps the key's original position in Keys.
func (a *Account) PutEntry(key string, e *Entry) {
	if _, ok := a.entries[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.entries[key] = e.Clone()
}

// Entry returns a copy of the entry stored under key.
func (a *Account) Entry(key string) (*Entry, bool) {
	e, ok := a.entries[key]
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Keys returns entry keys in insertion order.
func (a *Account) Keys() []string {
	return slices.Clone(a.keys)
}
