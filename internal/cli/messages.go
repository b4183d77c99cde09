package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// describeError turns a vault error into the message shown to the user.
// afterAuth selects the wording for lockouts that end a session.
func describeError(err error, afterAuth bool) string {
	var attempts *common.AttemptsError

	switch {
	case errors.As(err, &attempts) && errors.Is(err, common.ErrorWrongPassword):
		return fmt.Sprintf("Incorrect password. %d attempts remaining.", attempts.Remaining)
	case errors.As(err, &attempts) && errors.Is(err, common.ErrorWrongPasskey):
		return fmt.Sprintf("Incorrect passkey. %d attempts remaining.", attempts.Remaining)
	case errors.Is(err, common.ErrorLockedOut) && afterAuth:
		return "Too many failed attempts. Please login again."
	case errors.Is(err, common.ErrorLockedOut):
		return "Too many failed attempts. Account locked."
	case errors.Is(err, common.ErrorAlreadyExists):
		return "Username already exists"
	case errors.Is(err, common.ErrorNoSuchUser):
		return "User does not exist"
	case errors.Is(err, common.ErrorNotAuthenticated):
		return "Not logged in"
	case errors.Is(err, common.ErrorNotFound):
		return "Data not found"
	default:
		return "Error: " + err.Error()
	}
}
