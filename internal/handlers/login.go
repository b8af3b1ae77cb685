package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-admin-auth/internal/logger"
	"github.com/sbilibin2017/gw-admin-auth/internal/middlewares"
	"github.com/sbilibin2017/gw-admin-auth/internal/models"
	"github.com/sbilibin2017/gw-admin-auth/internal/responses"
	"github.com/sbilibin2017/gw-admin-auth/internal/services"
	"github.com/sbilibin2017/gw-admin-auth/internal/validation"
)

// maxLoginBodyBytes caps the size of a login request body.
const maxLoginBodyBytes = 1 << 20

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (token string, permissions []string, err error)
}

// NewLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Authenticate an admin and return a JWT token with the admin's permissions
// @Tags admin
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token and permissions"
// @Failure 400 {object} models.ErrorResponse "Request validation failed"
// @Failure 400 {object} models.ProblemDetails "Invalid username or password"
// @Failure 413 {object} models.ProblemDetails "Request body too large"
// @Failure 429 {object} models.ProblemDetails "Too many requests (v1 only)"
// @Failure 500 {object} models.ProblemDetails "Internal server error"
// @Router /admin/login [post]
// @Router /v1/admin/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		traceID := middlewares.RequestIDFromContext(ctx)

		r.Body = http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)

		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				logger.Log.Warnw("login request body too large", "request_id", traceID, "limit", tooLarge.Limit)
				responses.Problem(w, r, http.StatusRequestEntityTooLarge, traceID, "Request body too large")
				return
			}
			logger.Log.Warnw("failed to decode login request", "request_id", traceID, "error", err)
			responses.ValidationErrors(w, map[string][]string{
				"serializerErrors": {"invalid request body"},
			})
			return
		}

		if errs := validation.Validate(req); errs != nil {
			logger.Log.Warnw("invalid login request", "request_id", traceID, "errors", errs)
			responses.ValidationErrors(w, errs)
			return
		}

		token, permissions, err := svc.Login(ctx, req.UserName, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrAdminDoesNotExist):
				responses.Problem(w, r, http.StatusBadRequest, traceID, "Invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "request_id", traceID, "err", err)
				responses.Problem(w, r, http.StatusInternalServerError, traceID, "Internal server error")
			}
			return
		}

		responses.JSON(w, http.StatusOK, models.LoginResponse{
			JWTToken:    token,
			Permissions: permissions,
		})
	}
}
