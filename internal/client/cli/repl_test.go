package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) Products(ctx context.Context) error {
	f.calls = append(f.calls, "products")
	return nil
}

func (f *fakeExec) AddProduct(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}

func (f *fakeExec) EditProduct(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}

func (f *fakeExec) DeleteProduct(ctx context.Context) error {
	f.calls = append(f.calls, "del")
	return nil
}

func (f *fakeExec) Move(ctx context.Context) error {
	f.calls = append(f.calls, "move")
	return nil
}

func (f *fakeExec) Transactions(ctx context.Context) error {
	f.calls = append(f.calls, "transactions")
	return nil
}

func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}

func runWithInput(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()

	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "status" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}

	runWithInput(t, exec,
		"help",
		"login",
		"help",
		"products",
		"add",
		"move",
		"dashboard",
		"foobar",
		"logout",
		"exit",
	)

	require.Equal(t, []string{"login", "products", "add", "move", "dashboard", "logout"}, exec.calls)
}

func TestRunREPL_ShortAliases(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	runWithInput(t, exec, "p", "t", "d", "quit")

	assert.Equal(t, []string{"products", "transactions", "dashboard"}, exec.calls)
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	exec := &fakeExec{}

	// no exit command; the loop must stop on EOF
	runWithInput(t, exec, "", "   ", "register")

	assert.Equal(t, []string{"register"}, exec.calls)
}
