package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophvault/internal/services"
)

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubInputs feeds texts to getSimpleText in order and secrets to
// getPassword/getPasskey in order.
func stubInputs(t *testing.T, texts []string, secrets []string) {
	t.Helper()
	origST, origPW, origPK := getSimpleText, getPassword, getPasskey

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	nextSecret := func(_ io.Writer) ([]byte, error) {
		if len(secrets) == 0 {
			return nil, io.EOF
		}
		s := secrets[0]
		secrets = secrets[1:]
		return []byte(s), nil
	}
	getPassword = nextSecret
	getPasskey = nextSecret

	t.Cleanup(func() {
		getSimpleText, getPassword, getPasskey = origST, origPW, origPK
	})
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// fakeVault records arguments and returns canned results.
type fakeVault struct {
	regUser, loginUser   string
	regPass, loginPass   []byte
	storeKey, storeValue string
	storePasskey         []byte
	retrieveKey          string
	retrievePasskey      []byte
	logoutCalled         bool

	user        string
	regErr      error
	loginErr    error
	logoutErr   error
	storeErr    error
	retrieveOut string
	retrieveErr error
	listOut     []string
	listErr     error
}

var _ services.VaultService = (*fakeVault)(nil)

func (f *fakeVault) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeVault) Login(_ context.Context, _ *services.Session, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr == nil {
		f.user = user
	}
	return f.loginErr
}

func (f *fakeVault) Logout(context.Context, *services.Session) error {
	f.logoutCalled = true
	if f.logoutErr == nil {
		f.user = ""
	}
	return f.logoutErr
}

func (f *fakeVault) Store(_ context.Context, _ *services.Session, key, value string, passkey []byte) error {
	f.storeKey, f.storeValue, f.storePasskey = key, value, append([]byte(nil), passkey...)
	return f.storeErr
}

func (f *fakeVault) Retrieve(_ context.Context, _ *services.Session, key string, passkey []byte) (string, error) {
	f.retrieveKey, f.retrievePasskey = key, append([]byte(nil), passkey...)
	return f.retrieveOut, f.retrieveErr
}

func (f *fakeVault) List(context.Context, *services.Session) ([]string, error) {
	return f.listOut, f.listErr
}

func (f *fakeVault) CurrentUser(context.Context, *services.Session) (string, bool) {
	return f.user, f.user != ""
}

func newFakeApp(f *fakeVault) *App {
	return &App{vault: f, session: services.NewSession(), out: io.Discard}
}
