// Package api implements the HTTP client for the account server. It mirrors
// the server's JSON wire surface and translates error payloads back into
// typed errors the CLI can branch on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// ServerError is a non-2xx response decoded from the server's uniform
// error payload.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server: %s (status %d)", e.Message, e.Status)
}

// Client talks to one account server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client for the server at baseURL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

type verifyTokenResponse struct {
	Email string `json:"email"`
}

type updateUserRequest struct {
	Token    string  `json:"token"`
	Filter   string  `json:"filter"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Logout   *bool   `json:"logout,omitempty"`
}

type deleteUserRequest struct {
	Token  string `json:"token"`
	Filter string `json:"filter"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses come back as *ServerError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &ServerError{Status: resp.StatusCode, Message: e.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/user", registerRequest{Email: email, Password: password}, nil)
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Logout revokes the session token.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/logout", logoutRequest{Token: token}, nil)
}

// VerifyToken checks the session token and returns the email of the account
// it authenticates as.
func (c *Client) VerifyToken(ctx context.Context, token string) (string, error) {
	var resp verifyTokenResponse
	if err := c.do(ctx, http.MethodGet, "/token", verifyTokenRequest{Token: token}, &resp); err != nil {
		return "", err
	}
	return resp.Email, nil
}

// Update changes the email and/or password of the account selected by
// filter. Nil fields stay unchanged. When logout is true the authorizing
// token is revoked after a successful update.
func (c *Client) Update(ctx context.Context, token, filter string, email, password *string, logout bool) error {
	req := updateUserRequest{Token: token, Filter: filter, Email: email, Password: password}
	if logout {
		req.Logout = &logout
	}
	return c.do(ctx, http.MethodPatch, "/user", req, nil)
}

// Delete removes the account selected by filter.
func (c *Client) Delete(ctx context.Context, token, filter string) error {
	return c.do(ctx, http.MethodDelete, "/user", deleteUserRequest{Token: token, Filter: filter}, nil)
}
