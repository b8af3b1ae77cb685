package validation

import (
	"testing"

	"github.com/sbilibin2017/gw-admin-auth/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LoginRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        models.LoginRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  models.LoginRequest{UserName: "admin", Password: "pass"},
		},
		{
			name:       "both too short",
			req:        models.LoginRequest{UserName: "x", Password: "y"},
			wantFields: []string{"userName", "password"},
		},
		{
			name:       "missing password",
			req:        models.LoginRequest{UserName: "admin"},
			wantFields: []string{"password"},
		},
		{
			name:       "empty body",
			req:        models.LoginRequest{},
			wantFields: []string{"userName", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}

			require.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.NotEmpty(t, errs[f], "expected messages for %s", f)
			}
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	errs := Validate(models.LoginRequest{UserName: "x", Password: ""})

	assert.Equal(t, []string{"userName must be at least 3 characters long!"}, errs["userName"])
	assert.Equal(t, []string{"password is required!"}, errs["password"])
}
