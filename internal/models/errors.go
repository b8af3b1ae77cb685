package models

// ValidationMessage is the top level message of every ErrorResponse.
const ValidationMessage = "One or more errors occurred!"

// ErrorResponse represents a request that failed validation
// swagger:model ErrorResponse
type ErrorResponse struct {
	// HTTP status code
	// example: 400
	StatusCode int `json:"statusCode"`

	// Summary message
	// example: One or more errors occurred!
	Message string `json:"message"`

	// Validation messages keyed by request field
	Errors map[string][]string `json:"errors"`
}

// ProblemContentType is the media type of ProblemDetails documents.
const ProblemContentType = "application/problem+json"

// ProblemDetails is an RFC 7807 error document
// swagger:model ProblemDetails
type ProblemDetails struct {
	// example: https://www.rfc-editor.org/rfc/rfc7231#section-6.5.1
	Type string `json:"type"`

	// example: Bad Request
	Title string `json:"title"`

	// example: 400
	Status int `json:"status"`

	// Request path
	// example: /admin/login
	Instance string `json:"instance"`

	// Request id
	TraceID string `json:"traceId,omitempty"`

	// example: Invalid username or password
	Detail string `json:"detail,omitempty"`
}
