package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophvault/internal/common"
)

// Store prompts for a key, a value and a passkey and saves the entry.
func (a *App) Store(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Enter key", a.out)
	if err != nil {
		return err
	}

	value, err := getSimpleText(a.reader, "Enter value", a.out)
	if err != nil {
		return err
	}

	passkey, err := getPasskey(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passkey)

	if err := a.vault.Store(ctx, a.session, key, value, passkey); err != nil {
		printlnFn(describeError(err, true))
		return err
	}

	printlnFn("Data stored securely")
	return nil
}

// Retrieve prompts for a key and its passkey and prints the decrypted value.
func (a *App) Retrieve(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Enter key", a.out)
	if err != nil {
		return err
	}

	passkey, err := getPasskey(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(passkey)

	value, err := a.vault.Retrieve(ctx, a.session, key, passkey)
	if err != nil {
		printlnFn(describeError(err, true))
		return err
	}

	printlnFn("Retrieved data: " + value)
	return nil
}

// List prints the stored keys in insertion order.
func (a *App) List(ctx context.Context) error {
	keys, err := a.vault.List(ctx, a.session)
	if err != nil {
		printlnFn(describeError(err, true))
		return err
	}

	if len(keys) == 0 {
		printlnFn("No data stored yet.")
		return nil
	}

	printlnFn("Your data keys:")
	for i, k := range keys {
		printlnFn(fmt.Sprintf("%d. %s", i+1, k))
	}
	return nil
}
