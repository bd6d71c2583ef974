package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates the account. It does not
// sign the user in: registering and signing in are two separate steps.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.session.SignUp(ctx, email, password, fullName); err != nil {
		return err
	}

	fmt.Println("Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and signs the user in. On success the first
// dashboard fetch is kicked off so the view has data before the first tick.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SignIn(ctx, email, password); err != nil {
		return err
	}

	fmt.Println("Login successful")
	_ = a.dashboard.Fetch(ctx)
	return nil
}

// Logout signs the user out. The session guarantees the local sign-out even
// when the remote call fails, so only report the remote error.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.SignOut(ctx)
	fmt.Println("Logged out")
	return err
}
