package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-admin-auth/internal/logger"
	"github.com/sbilibin2017/gw-admin-auth/internal/models"
)

type AdminReadRepository struct {
	db *sqlx.DB
}

func NewAdminReadRepository(db *sqlx.DB) *AdminReadRepository {
	return &AdminReadRepository{db: db}
}

// GetByUsername loads an admin with its permissions in stored order.
// It returns nil, nil when no admin has the given username.
func (r *AdminReadRepository) GetByUsername(ctx context.Context, username string) (*models.AdminDB, error) {
	const adminQuery = `
		SELECT admin_id, username, password_hash, created_at, updated_at
		FROM admins
		WHERE username = $1
	`
	const permissionsQuery = `
		SELECT permission
		FROM admin_permissions
		WHERE admin_id = $1
		ORDER BY position
	`

	var admin models.AdminDB
	err := r.db.GetContext(ctx, &admin, adminQuery, username)

	logger.Log.Debugw(
		"query", oneLine(adminQuery),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select admin: %w", err)
	}

	perms := []string{}
	err = r.db.SelectContext(ctx, &perms, permissionsQuery, admin.AdminID)

	logger.Log.Debugw(
		"query", oneLine(permissionsQuery),
		"args", []any{admin.AdminID},
		"result", len(perms),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("select admin permissions: %w", err)
	}
	admin.Permissions = perms

	return &admin, nil
}

type AdminWriteRepository struct {
	db *sqlx.DB
}

func NewAdminWriteRepository(db *sqlx.DB) *AdminWriteRepository {
	return &AdminWriteRepository{db: db}
}

// Save upserts the admin and replaces its permission set in one transaction.
func (r *AdminWriteRepository) Save(ctx context.Context, username, passwordHash string, permissions []string) error {
	const upsertQuery = `
		INSERT INTO admins (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    updated_at = NOW()
		RETURNING admin_id
	`
	const deleteQuery = `DELETE FROM admin_permissions WHERE admin_id = $1`
	const insertQuery = `
		INSERT INTO admin_permissions (admin_id, permission, position)
		VALUES ($1, $2, $3)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var adminID uuid.UUID
	err = tx.QueryRowxContext(ctx, upsertQuery, username, passwordHash).Scan(&adminID)

	logger.Log.Debugw(
		"query", oneLine(upsertQuery),
		"args", []any{username},
		"result", adminID,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, adminID); err != nil {
		return fmt.Errorf("clear admin permissions: %w", err)
	}

	for i, perm := range permissions {
		if _, err := tx.ExecContext(ctx, insertQuery, adminID, perm, i); err != nil {
			return fmt.Errorf("insert admin permission %q: %w", perm, err)
		}
	}

	logger.Log.Debugw(
		"query", oneLine(insertQuery),
		"args", []any{adminID, permissions},
		"result", len(permissions),
	)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// oneLine collapses a query onto a single line for logging.
func oneLine(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
