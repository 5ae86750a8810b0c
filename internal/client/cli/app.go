// Package cli implements the interactive command-line client for the
// account server: a small REPL over the HTTP API with session state held
// in memory for the lifetime of the process.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/avasiljevs/userauth/internal/client/api"
	"github.com/avasiljevs/userauth/internal/client/config"
)

// accountAPI is the slice of the HTTP client the commands consume.
// *api.Client satisfies it; tests provide a stub.
type accountAPI interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) (string, error)
	Update(ctx context.Context, token, filter string, email, password *string, logout bool) error
	Delete(ctx context.Context, token, filter string) error
}

type App struct {
	config  *config.Config
	service accountAPI

	// Session state. token is the opaque session token from the last
	// successful login; email is the address it was issued for.
	token string
	email string

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config:  c,
		service: api.NewClient(c.ServerEndpointAddr),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) clearSession() {
	a.token = ""
	a.email = ""
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.email
	}
	return "guest"
}
