package httpapi

import (
	"errors"
	"net/http"

	"github.com/avasiljevs/userauth/internal/common"
)

// genericInternalMessage is the only text internal failures (store errors,
// registry lock failures) ever surface with. Persistence detail stays in
// the server logs.
const genericInternalMessage = "internal error, try again later"

// statusForError maps an error kind from the closed taxonomy to the wire
// status and the fixed client-facing message.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrUserAlreadyExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, common.ErrUserDoesNotExist):
		return http.StatusNotFound, "user does not exist"
	case errors.Is(err, common.ErrIncorrectCredentials):
		return http.StatusUnauthorized, "incorrect email or password"
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, common.ErrTokenDoesNotExist):
		return http.StatusUnauthorized, "token does not exist"
	default:
		// common.ErrStore, common.ErrLockUnavailable, and anything
		// unclassified are internal.
		return http.StatusInternalServerError, genericInternalMessage
	}
}
