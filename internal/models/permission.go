package models

// Admin permission codes.
const (
	PermArticlesCreate  = "articles:create"
	PermArticlesRead    = "articles:read"
	PermArticlesUpdate  = "articles:update"
	PermArticlesDelete  = "articles:delete"
	PermAuthorsCreate   = "authors:create"
	PermAuthorsUpdate   = "authors:update"
	PermInventoryManage = "inventory:manage"
)

// DefaultAdminPermissions returns the permissions granted to the seeded admin.
// A new slice is returned on every call.
func DefaultAdminPermissions() []string {
	return []string{
		PermArticlesCreate,
		PermArticlesRead,
		PermArticlesUpdate,
		PermArticlesDelete,
		PermAuthorsCreate,
		PermAuthorsUpdate,
		PermInventoryManage,
	}
}
