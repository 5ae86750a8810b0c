package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avasiljevs/userauth/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// Register prompts the user for an email and password and attempts to create
// a new account.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.service.Register(ctx, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the issued session token and email are stored in the App and
// the prompt reflects the logged-in account. The password is securely wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.service.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.token = token
	a.email = email
	log.Printf("Login successful")
	return nil
}

// Whoami verifies the current session token against the server and prints
// the email of the account it authenticates as.
func (a *App) Whoami(ctx context.Context) error {
	email, err := a.service.VerifyToken(ctx, a.token)
	if err != nil {
		log.Printf("Token check unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Logged in as", email)
	return nil
}

// Logout revokes the session token on the server and clears the in-memory
// session. Local state is cleared even when the server call fails: a token
// the server no longer recognizes is not worth keeping.
func (a *App) Logout(ctx context.Context) error {
	err := a.service.Logout(ctx, a.token)
	a.clearSession()
	if err != nil {
		log.Printf("Logout unsuccessful: %s", err.Error())
		return err
	}
	return nil
}
