package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptsError_UnwrapAndMessage(t *testing.T) {
	err := &AttemptsError{Err: ErrorWrongPasskey, Remaining: 2}

	assert.True(t, errors.Is(err, ErrorWrongPasskey))
	assert.False(t, errors.Is(err, ErrorWrongPassword))
	assert.Equal(t, "wrong passkey: 2 attempts remaining", err.Error())
}

func TestRemainingAttempts(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		wantOK bool
	}{
		{name: "direct", err: &AttemptsError{Err: ErrorWrongPassword, Remaining: 1}, want: 1, wantOK: true},
		{name: "wrapped", err: fmt.Errorf("login: %w", &AttemptsError{Err: ErrorWrongPassword, Remaining: 2}), want: 2, wantOK: true},
		{name: "plain sentinel", err: ErrorLockedOut, want: 0, wantOK: false},
		{name: "nil", err: nil, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RemainingAttempts(tt.err)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
