package models

// LoginRequest represents the JSON body for admin login
// swagger:model LoginRequest
type LoginRequest struct {
	// Admin username
	// required: true
	// example: admin
	UserName string `json:"userName" validate:"required,min=3"`

	// Admin password
	// required: true
	// example: pass
	Password string `json:"password" validate:"required,min=3"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Signed JWT
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	JWTToken string `json:"jwtToken"`

	// Permissions granted to the admin, in stored order
	// example: ["articles:create","articles:read"]
	Permissions []string `json:"permissions"`
}

// PermissionsResponse lists the permissions carried by the caller's token
// swagger:model PermissionsResponse
type PermissionsResponse struct {
	// Admin username
	// example: admin
	UserName string `json:"userName"`

	// Permissions from the token
	Permissions []string `json:"permissions"`
}
