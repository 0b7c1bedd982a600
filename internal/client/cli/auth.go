package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/nmorozova/lovebird/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and asks the session manager to
// authenticate. The manager reports a plain success/failure outcome; the
// screen owns the user-facing message.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if username == "" || password == "" {
		printlnFn("Username and password are required.")
		return nil
	}

	if a.session.Login(ctx, username, password) {
		printlnFn("Welcome back!")
	} else {
		printlnFn("Login failed. Check your credentials and try again.")
	}
	return nil
}

// Register collects the account fields and attempts to create an account.
// Server-side validation errors are shown per field so the user knows what
// to fix.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if name == "" || username == "" || email == "" || password == "" {
		printlnFn("All fields are required.")
		return nil
	}

	res := a.session.Register(ctx, api.RegisterRequest{
		Name:     name,
		Username: username,
		Email:    email,
		Password: password,
	})
	if res.OK {
		printlnFn("Success! You are now logged in.")
		return nil
	}

	if len(res.FieldErrors) > 0 {
		fields := make([]string, 0, len(res.FieldErrors))
		for f := range res.FieldErrors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			printlnFn(fmt.Sprintf("  %s: %s", f, res.FieldErrors[f]))
		}
		return nil
	}

	printlnFn(res.Message)
	return nil
}

// Logout tears the session down. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
