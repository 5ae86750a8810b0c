package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avasiljevs/userauth/internal/common"
)

// Update interactively changes the email and/or password of an account.
// Empty answers leave the corresponding field unchanged. The filter email
// defaults to the logged-in account, so a plain Enter updates oneself.
func (a *App) Update(ctx context.Context) error {
	filter, err := getSimpleText(a.reader, fmt.Sprintf("Enter account email to update (empty for %s)", a.email), os.Stdout)
	if err != nil {
		return err
	}
	if filter == "" {
		filter = a.email
	}

	var newEmail *string
	answer, err := getSimpleText(a.reader, "Enter new email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "" {
		newEmail = &answer
	}

	var newPassword *string
	changePassword, err := getConfirmation(a.reader, "Change password?", os.Stdout)
	if err != nil {
		return err
	}
	if changePassword {
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)
		s := string(password)
		newPassword = &s
	}

	logout, err := getConfirmation(a.reader, "Log out after update?", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.service.Update(ctx, a.token, filter, newEmail, newPassword, logout); err != nil {
		log.Printf("Update unsuccessful: %s", err.Error())
		return err
	}

	// Keep the prompt in sync with a rename of the logged-in account.
	if filter == a.email && newEmail != nil {
		a.email = *newEmail
	}
	if logout {
		a.clearSession()
	}

	fmt.Println("Success!")
	return nil
}

// Delete interactively removes an account. The operation requires an extra
// confirmation and, when the deleted account is the logged-in one, clears
// the local session.
func (a *App) Delete(ctx context.Context) error {
	filter, err := getSimpleText(a.reader, fmt.Sprintf("Enter account email to delete (empty for %s)", a.email), os.Stdout)
	if err != nil {
		return err
	}
	if filter == "" {
		filter = a.email
	}

	confirmed, err := getConfirmation(a.reader, fmt.Sprintf("Really delete %s?", filter), os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.service.Delete(ctx, a.token, filter); err != nil {
		log.Printf("Delete unsuccessful: %s", err.Error())
		return err
	}

	if filter == a.email {
		a.clearSession()
	}

	fmt.Println("Success!")
	return nil
}
