package cli

import (
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"alice"}, []string{"pw1"})

	f := &fakeVault{}
	a := newFakeApp(f)

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "alice", f.regUser)
	assert.Equal(t, []byte("pw1"), f.regPass)
	assert.Equal(t, []string{"User registered successfully"}, *out)
}

func TestRegister_AlreadyExists(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, []string{"alice"}, []string{"pw1"})

	a := newFakeApp(&fakeVault{regErr: common.ErrorAlreadyExists})

	err := a.Register(context.Background())
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, []string{"Username already exists"}, *out)
}

func TestRegister_InputErrorStopsEarly(t *testing.T) {
	captureOutput(t)
	stubInputs(t, []string{"alice"}, nil)

	f := &fakeVault{}
	a := newFakeApp(f)

	require.ErrorIs(t, a.Register(context.Background()), io.EOF)
	assert.Empty(t, f.regUser, "vault must not be called without a password")
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "success", wantMsg: "Login successful"},
		{name: "wrong password", err: &common.AttemptsError{Err: common.ErrorWrongPassword, Remaining: 2}, wantMsg: "Incorrect password. 2 attempts remaining."},
		{name: "locked", err: common.ErrorLockedOut, wantMsg: "Too many failed attempts. Account locked."},
		{name: "no user", err: common.ErrorNoSuchUser, wantMsg: "User does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t)
			stubInputs(t, []string{"alice"}, []string{"pw1"})

			f := &fakeVault{loginErr: tt.err}
			a := newFakeApp(f)

			err := a.Login(context.Background())
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
				assert.True(t, a.isLoggedIn(context.Background()))
			}
			assert.Equal(t, "alice", f.loginUser)
			assert.Equal(t, []byte("pw1"), f.loginPass)
			assert.Equal(t, []string{tt.wantMsg}, *out)
		})
	}
}

func TestLogout(t *testing.T) {
	out := captureOutput(t)

	f := &fakeVault{user: "alice"}
	a := newFakeApp(f)

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.False(t, a.isLoggedIn(context.Background()))
	assert.Equal(t, []string{"Logged out successfully"}, *out)
}

func TestLogout_NotLoggedIn(t *testing.T) {
	out := captureOutput(t)

	a := newFakeApp(&fakeVault{logoutErr: common.ErrorNotAuthenticated})

	require.ErrorIs(t, a.Logout(context.Background()), common.ErrorNotAuthenticated)
	assert.Equal(t, []string{"Not logged in"}, *out)
}

func TestWhoAmI(t *testing.T) {
	out := captureOutput(t)

	a := newFakeApp(&fakeVault{user: "alice"})
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Equal(t, "(alice)", a.getStatus(context.Background()))

	a = newFakeApp(&fakeVault{})
	require.ErrorIs(t, a.WhoAmI(context.Background()), common.ErrorNotAuthenticated)
	assert.Empty(t, a.getStatus(context.Background()))

	assert.Equal(t, []string{"Logged in as: alice", "Not logged in"}, *out)
}
