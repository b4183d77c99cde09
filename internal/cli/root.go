package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus(ctx context.Context) string {
	if user, ok := a.vault.CurrentUser(ctx, a.session); ok {
		return fmt.Sprintf("(%s)", user)
	}
	return ""
}

// Root prints the banner and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	printlnFn("===== GophVault secure storage (type 'help' for commands) =====")
	runREPL(ctx, a, a.getStatus, a.reader)
}
