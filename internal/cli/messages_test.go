package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		afterAuth bool
		want      string
	}{
		{"wrong password", &common.AttemptsError{Err: common.ErrorWrongPassword, Remaining: 2}, false, "Incorrect password. 2 attempts remaining."},
		{"wrong passkey", &common.AttemptsError{Err: common.ErrorWrongPasskey, Remaining: 1}, true, "Incorrect passkey. 1 attempts remaining."},
		{"login lockout", fmt.Errorf("%w: retry in 30s", common.ErrorLockedOut), false, "Too many failed attempts. Account locked."},
		{"session lockout", common.ErrorLockedOut, true, "Too many failed attempts. Please login again."},
		{"exists", common.ErrorAlreadyExists, false, "Username already exists"},
		{"no user", common.ErrorNoSuchUser, false, "User does not exist"},
		{"not authenticated", fmt.Errorf("session expired: %w", common.ErrorNotAuthenticated), true, "Not logged in"},
		{"not found", common.ErrorNotFound, true, "Data not found"},
		{"other", errors.New("disk on fire"), true, "Error: disk on fire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err, tt.afterAuth))
		})
	}
}
