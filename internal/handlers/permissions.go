package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-admin-auth/internal/middlewares"
	"github.com/sbilibin2017/gw-admin-auth/internal/models"
	"github.com/sbilibin2017/gw-admin-auth/internal/responses"
)

// NewPermissionsHandler returns the permissions carried by the caller's token.
// Must be mounted behind middlewares.AuthMiddleware.
// @Summary Current admin permissions
// @Description Returns the username and permissions from the bearer token
// @Tags admin
// @Produce json
// @Success 200 {object} models.PermissionsResponse
// @Failure 401 {object} models.ProblemDetails "Unauthorized"
// @Router /admin/permissions [get]
// @Security BearerAuth
func NewPermissionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			responses.Problem(w, r, http.StatusUnauthorized, middlewares.RequestIDFromContext(r.Context()), "missing token claims")
			return
		}

		permissions := claims.Permissions
		if permissions == nil {
			permissions = []string{}
		}

		responses.JSON(w, http.StatusOK, models.PermissionsResponse{
			UserName:    claims.Username,
			Permissions: permissions,
		})
	}
}
