package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_PutEntryAndKeys(t *testing.T) {
	a := NewAccount("alice", []byte("v"), time.Now())
	assert.Empty(t, a.Keys())

	a.PutEntry("b", &Entry{Ciphertext: []byte("1"), Salt: []byte("s1")})
	a.PutEntry("a", &Entry{Ciphertext: []byte("2"), Salt: []byte("s2")})
	a.PutEntry("b", &Entry{Ciphertext: []byte("3"), Salt: []byte("s3")})

	assert.Equal(t, []string{"b", "a"}, a.Keys())

	e, ok := a.Entry("b")
	require.True(t, ok)
	assert.Equal(t, []byte("3"), e.Ciphertext)
	assert.Equal(t, []byte("s3"), e.Salt)

	_, ok = a.Entry("missing")
	assert.False(t, ok)
}

func TestAccount_EntriesAreCopied(t *testing.T) {
	a := NewAccount("alice", nil, time.Now())

	in := &Entry{Ciphertext: []byte("ct"), Salt: []byte("salt")}
	a.PutEntry("k", in)
	in.Ciphertext[0] = 'X'

	out, ok := a.Entry("k")
	require.True(t, ok)
	assert.Equal(t, []byte("ct"), out.Ciphertext)

	out.Salt[0] = 'X'
	again, _ := a.Entry("k")
	assert.Equal(t, []byte("salt"), again.Salt)

	keys := a.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"k"}, a.Keys())
}

func TestEntry_CloneNil(t *testing.T) {
	var e *Entry
	assert.Nil(t, e.Clone())
}
