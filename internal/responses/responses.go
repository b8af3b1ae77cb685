package responses

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-admin-auth/internal/logger"
	"github.com/sbilibin2017/gw-admin-auth/internal/models"
)

// RFC 7231 section links used as problem types.
var problemTypes = map[int]string{
	http.StatusBadRequest:            "https://www.rfc-editor.org/rfc/rfc7231#section-6.5.1",
	http.StatusUnauthorized:          "https://www.rfc-editor.org/rfc/rfc7235#section-3.1",
	http.StatusRequestEntityTooLarge: "https://www.rfc-editor.org/rfc/rfc7231#section-6.5.11",
	http.StatusTooManyRequests:       "https://www.rfc-editor.org/rfc/rfc6585#section-4",
	http.StatusInternalServerError:   "https://www.rfc-editor.org/rfc/rfc7231#section-6.6.1",
}

// JSON writes v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
	}
}

// ValidationErrors writes a 400 ErrorResponse listing the failed fields.
func ValidationErrors(w http.ResponseWriter, errs map[string][]string) {
	JSON(w, http.StatusBadRequest, models.ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    models.ValidationMessage,
		Errors:     errs,
	})
}

// Problem writes an RFC 7807 problem document for r.
func Problem(w http.ResponseWriter, r *http.Request, status int, traceID, detail string) {
	typ, ok := problemTypes[status]
	if !ok {
		typ = "about:blank"
	}

	w.Header().Set("Content-Type", models.ProblemContentType)
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(models.ProblemDetails{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.URL.Path,
		TraceID:  traceID,
		Detail:   detail,
	})
	if err != nil {
		logger.Log.Errorw("failed to encode problem", "status", status, "error", err)
	}
}
