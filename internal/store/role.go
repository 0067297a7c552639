package store

import (
	"context"
	"fmt"

	"account-service/internal/database"
	"account-service/internal/model"
)

func CreateRole(ctx context.Context, db database.DB, r *model.Role) (*model.Role, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO roles (name, user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		r.Name,
		r.UserID,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		if uniq := uniqueViolation(err); uniq != nil {
			return nil, uniq
		}
		return nil, fmt.Errorf("CreateRole: %w", err)
	}
	return r, nil
}

// AssignRole points a role at a user. The foreign key rejects unknown user
// ids; an unknown role id reports ErrNotFound.
func AssignRole(ctx context.Context, db database.DB, roleID, userID int) error {
	tag, err := db.Exec(ctx,
		`UPDATE roles SET user_id = $1 WHERE id = $2`,
		userID,
		roleID,
	)
	if err != nil {
		return fmt.Errorf("AssignRole: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("AssignRole: %w", ErrNotFound)
	}
	return nil
}

func ListRolesByUserID(ctx context.Context, db database.DB, userID int) ([]model.Role, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, user_id, created_at FROM roles WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRolesByUserID: %w", err)
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		r := model.Role{}
		if err := rows.Scan(&r.ID, &r.Name, &r.UserID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListRolesByUserID: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRolesByUserID: %w", err)
	}
	return roles, nil
}
