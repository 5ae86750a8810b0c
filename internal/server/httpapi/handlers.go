package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avasiljevs/userauth/internal/logging"
)

// AccountService is the slice of the service layer the handlers consume.
type AccountService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) (string, error)
	Update(ctx context.Context, token, filter string, newEmail, newPassword *string, logoutAfter bool) error
	AdminUpdate(ctx context.Context, filter string, newEmail, newPassword *string) error
	Delete(ctx context.Context, token, filter string) error
	AdminDelete(ctx context.Context, filter string) error
}

// Handler translates wire requests into service calls and service errors
// into statuses.
type Handler struct {
	service AccountService
	logger  logging.Logger
}

// NewHandler constructs a Handler.
func NewHandler(service AccountService, logger logging.Logger) *Handler {
	return &Handler{service: service, logger: logger.With("module", "httpapi")}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, message := statusForError(err)
	if status == http.StatusInternalServerError {
		// Classified detail is logged, never sent to the client.
		h.logger.Error(c.Request.Context(), "internal error",
			"request_id", c.GetString(requestIDKey), "err", err.Error())
	}
	c.JSON(status, ErrorResponse{Error: message})
}

// RegisterHandler handles POST /user.
func (h *Handler) RegisterHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// LoginHandler handles POST /login.
func (h *Handler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// LogoutHandler handles POST /logout.
func (h *Handler) LogoutHandler(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), req.Token); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// VerifyTokenHandler handles GET /token.
func (h *Handler) VerifyTokenHandler(c *gin.Context) {
	var req VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	email, err := h.service.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, VerifyTokenResponse{Email: email})
}

// UpdateHandler handles PATCH /user.
func (h *Handler) UpdateHandler(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	logoutAfter := req.Logout != nil && *req.Logout
	if err := h.service.Update(c.Request.Context(), req.Token, req.Filter, req.Email, req.Password, logoutAfter); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteHandler handles DELETE /user.
func (h *Handler) DeleteHandler(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.Token, req.Filter); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AdminUpdateHandler handles PATCH /admin/user. The request's logout flag
// is ignored: with no token context there is nothing to revoke.
func (h *Handler) AdminUpdateHandler(c *gin.Context) {
	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.AdminUpdate(c.Request.Context(), req.Filter, req.Email, req.Password); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AdminDeleteHandler handles DELETE /admin/user.
func (h *Handler) AdminDeleteHandler(c *gin.Context) {
	var req AdminDeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.service.AdminDelete(c.Request.Context(), req.Filter); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}
