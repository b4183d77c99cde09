package cli

import (
	"context"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// getSimpleText, getPassword and getPasskey are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getPasskey    = GetPasskey
)

// Register prompts for a username and password and creates the account.
// The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.vault.Register(ctx, userName, password); err != nil {
		printlnFn(describeError(err, false))
		return err
	}

	printlnFn("User registered successfully")
	return nil
}

// Login prompts for credentials and binds the app's session on success.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.vault.Login(ctx, a.session, userName, password); err != nil {
		printlnFn(describeError(err, false))
		return err
	}

	printlnFn("Login successful")
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.vault.Logout(ctx, a.session); err != nil {
		printlnFn(describeError(err, false))
		return err
	}

	printlnFn("Logged out successfully")
	return nil
}

// WhoAmI prints the username bound to the session.
func (a *App) WhoAmI(ctx context.Context) error {
	user, ok := a.vault.CurrentUser(ctx, a.session)
	if !ok {
		printlnFn(describeError(common.ErrorNotAuthenticated, false))
		return common.ErrorNotAuthenticated
	}

	printlnFn("Logged in as: " + user)
	return nil
}
