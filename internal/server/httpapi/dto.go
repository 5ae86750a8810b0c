// Package httpapi exposes the account service over HTTP/JSON. It owns the
// wire surface only: request decoding, the error-kind to status mapping,
// and the admin gate. All business rules live in the service.
package httpapi

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the freshly issued opaque token.
type LoginResponse struct {
	Token string `json:"token"`
}

// LogoutRequest revokes a single session token.
type LogoutRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyTokenRequest checks a session token.
type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyTokenResponse names the account the token authenticates as.
type VerifyTokenResponse struct {
	Email string `json:"email"`
}

// UpdateUserRequest mutates the caller's own account. Email and Password
// are independently optional; Logout revokes the authorizing token after a
// successful update.
type UpdateUserRequest struct {
	Token    string  `json:"token" binding:"required"`
	Filter   string  `json:"filter" binding:"required"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Logout   *bool   `json:"logout"`
}

// AdminUpdateUserRequest mutates any account, selected by filter email.
// The Logout flag is accepted for wire compatibility but is a no-op: there
// is no session token in admin context to revoke.
type AdminUpdateUserRequest struct {
	Filter   string  `json:"filter" binding:"required"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Logout   *bool   `json:"logout"`
}

// DeleteUserRequest deletes the caller's own account.
type DeleteUserRequest struct {
	Token  string `json:"token" binding:"required"`
	Filter string `json:"filter" binding:"required"`
}

// AdminDeleteUserRequest deletes any account, selected by filter email.
type AdminDeleteUserRequest struct {
	Filter string `json:"filter" binding:"required"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
