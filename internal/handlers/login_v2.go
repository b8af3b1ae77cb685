package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-admin-auth/internal/responses"
)

// LoginAPIVersion is the version marker returned by the v2 login endpoint.
const LoginAPIVersion = 2

// NewLoginV2Handler returns the v2 login endpoint, which only reports its version.
// @Summary Admin login v2
// @Description Returns the login API version marker
// @Tags admin
// @Produce json
// @Success 200 {integer} int "2"
// @Router /v2/admin/login [get]
func NewLoginV2Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.JSON(w, http.StatusOK, LoginAPIVersion)
	}
}
