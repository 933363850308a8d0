package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

const userColumns = `id, email, name, role, blocked, created_at`

type UserRepo struct {
	db DB
}

func NewUserRepo(db DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
LIMIT 1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Blocked, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
ORDER BY created_at ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, 50)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Blocked, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (repo *UserRepo) UpdateRole(ctx context.Context, id int64, role entity.Role) error {
	const query = `UPDATE users SET role = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("UpdateRole: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateRole: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("UpdateRole: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *UserRepo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	const query = `UPDATE users SET blocked = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, blocked, id)
	if err != nil {
		return fmt.Errorf("SetBlocked: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("SetBlocked: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("SetBlocked: %w", entity.ErrNotFound)
	}
	return nil
}
