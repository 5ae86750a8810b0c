package cli

import (
	"context"
	"errors"
	"testing"
)

func TestUpdate_RenameSelfKeepsPromptInSync(t *testing.T) {
	f := &fakeService{}
	a := &App{service: f, token: "tok123", email: "alice@example.org"}

	// filter (empty = self), new email; no password change, no logout.
	restore := stubInputs(t, []string{"", "alice2@example.org"}, nil, []bool{false, false})
	defer restore()

	if err := a.Update(context.Background()); err != nil {
		t.Fatalf("Update err: %v", err)
	}

	if f.updateFilter != "alice@example.org" {
		t.Fatalf("filter: got %q", f.updateFilter)
	}
	if f.updateEmail == nil || *f.updateEmail != "alice2@example.org" {
		t.Fatalf("email: got %v", f.updateEmail)
	}
	if f.updatePass != nil {
		t.Fatalf("password should be unset, got %v", f.updatePass)
	}
	if a.email != "alice2@example.org" {
		t.Fatalf("prompt email not updated: %q", a.email)
	}
	if !a.isLoggedIn() {
		t.Fatal("session should survive a plain update")
	}
}

func TestUpdate_PasswordChangeWithLogout(t *testing.T) {
	f := &fakeService{}
	a := &App{service: f, token: "tok123", email: "alice@example.org"}

	restore := stubInputs(t, []string{"", ""}, []byte("newpass"), []bool{true, true})
	defer restore()

	if err := a.Update(context.Background()); err != nil {
		t.Fatalf("Update err: %v", err)
	}

	if f.updateEmail != nil {
		t.Fatalf("email should be unset, got %v", f.updateEmail)
	}
	if f.updatePass == nil || *f.updatePass != "newpass" {
		t.Fatalf("password: got %v", f.updatePass)
	}
	if !f.updateLogout {
		t.Fatal("logout flag not passed")
	}
	if a.isLoggedIn() {
		t.Fatal("session should be cleared after logout update")
	}
}

func TestUpdate_ServiceErrorKeepsSession(t *testing.T) {
	f := &fakeService{updateErr: errors.New("invalid token")}
	a := &App{service: f, token: "tok123", email: "alice@example.org"}

	restore := stubInputs(t, []string{"bob@example.org", "bob2@example.org"}, nil, []bool{false, true})
	defer restore()

	if err := a.Update(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if !a.isLoggedIn() || a.email != "alice@example.org" {
		t.Fatal("session should be untouched on failure")
	}
}

func TestDelete_SelfClearsSession(t *testing.T) {
	f := &fakeService{}
	a := &App{service: f, token: "tok123", email: "alice@example.org"}

	restore := stubInputs(t, []string{""}, nil, []bool{true})
	defer restore()

	if err := a.Delete(context.Background()); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if f.deleteFilter != "alice@example.org" || f.deleteToken != "tok123" {
		t.Fatalf("unexpected delete args: %q %q", f.deleteFilter, f.deleteToken)
	}
	if a.isLoggedIn() {
		t.Fatal("session should be cleared")
	}
}

func TestDelete_NotConfirmedDoesNothing(t *testing.T) {
	f := &fakeService{}
	a := &App{service: f, token: "tok123", email: "alice@example.org"}

	restore := stubInputs(t, []string{"bob@example.org"}, nil, []bool{false})
	defer restore()

	if err := a.Delete(context.Background()); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if f.deleteCalled {
		t.Fatal("service should not be called without confirmation")
	}
}
