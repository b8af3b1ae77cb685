package responses

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-admin-auth/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	JSON(rr, http.StatusOK, 2)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, "2", rr.Body.String())
}

func TestValidationErrors(t *testing.T) {
	rr := httptest.NewRecorder()

	ValidationErrors(rr, map[string][]string{
		"userName": {"too short"},
		"password": {"too short"},
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.StatusCode)
	assert.Equal(t, models.ValidationMessage, body.Message)
	assert.Len(t, body.Errors, 2)
}

func TestProblem(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantType string
	}{
		{"bad request", http.StatusBadRequest, "https://www.rfc-editor.org/rfc/rfc7231#section-6.5.1"},
		{"too many requests", http.StatusTooManyRequests, "https://www.rfc-editor.org/rfc/rfc6585#section-4"},
		{"unmapped status", http.StatusConflict, "about:blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
			rr := httptest.NewRecorder()

			Problem(rr, req, tt.status, "trace-1", "something went wrong")

			assert.Equal(t, tt.status, rr.Code)
			mediaType, _, err := mime.ParseMediaType(rr.Header().Get("Content-Type"))
			require.NoError(t, err)
			assert.Equal(t, models.ProblemContentType, mediaType)

			var body models.ProblemDetails
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, models.ProblemDetails{
				Type:     tt.wantType,
				Title:    http.StatusText(tt.status),
				Status:   tt.status,
				Instance: "/admin/login",
				TraceID:  "trace-1",
				Detail:   "something went wrong",
			}, body)
		})
	}
}
