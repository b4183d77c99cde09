package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Store(ctx context.Context) error
	Retrieve(ctx context.Context) error
	List(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

var (
	anonymousMenu     = []string{"register", "login", "exit"}
	authenticatedMenu = []string{"store", "retrieve", "list", "logout", "exit"}
)

// runREPL reads one command per line from reader and dispatches it to a.
// A bare number picks the matching entry of the menu for the current
// state, mirroring the printed menu. The loop exits on EOF or on
// "exit"/"quit".
//
// Handler errors are not fatal: handlers report outcomes to the user
// themselves, so the loop only keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func(ctx context.Context) string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gv%s> ", statusFn(ctx)))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		loggedIn := a.isLoggedIn(ctx)
		cmd := resolveCommand(parts[0], loggedIn)

		switch cmd {
		case "help", "?":
			printMenu(loggedIn)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "store":
			_ = a.Store(ctx)

		case "retrieve":
			_ = a.Retrieve(ctx)

		case "list", "l":
			_ = a.List(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Exiting...")
			return

		default:
			printlnFn("Invalid choice. Please try again.")
		}
	}
}

// resolveCommand maps a 1-based menu number to its command name.
func resolveCommand(token string, loggedIn bool) string {
	menu := anonymousMenu
	if loggedIn {
		menu = authenticatedMenu
	}

	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= len(menu) {
			return menu[n-1]
		}
		return ""
	}
	return strings.ToLower(token)
}

func printMenu(loggedIn bool) {
	menu := anonymousMenu
	if loggedIn {
		menu = authenticatedMenu
	}
	for i, item := range menu {
		printlnFn(fmt.Sprintf("%d. %s", i+1, item))
	}
}
