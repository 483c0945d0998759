package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"sitecms/internal/domain"
)

type systemUserRepository struct {
	DB *sql.DB
}

func NewSystemUserRepository(db *sql.DB) domain.SystemUserRepository {
	return &systemUserRepository{DB: db}
}

func (r *systemUserRepository) Create(ctx context.Context, u *domain.SystemUser) error {
	query := `
		INSERT INTO system_user (sys_email, sys_pass, sys_name, sys_role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, u.Email, u.Password, u.Name, u.Role).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

// GetByEmail returns domain.ErrNotRegistered when no user has the address.
func (r *systemUserRepository) GetByEmail(ctx context.Context, email string) (*domain.SystemUser, error) {
	query := `
		SELECT id, sys_email, sys_pass, sys_name, sys_role
		FROM system_user
		WHERE sys_email = $1
	`
	u := &domain.SystemUser{}
	var name, role sql.NullString
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Password, &name, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotRegistered
		}
		return nil, err
	}
	u.Name = name.String
	u.Role = role.String
	return u, nil
}

func (r *systemUserRepository) UpdatePassword(ctx context.Context, email, password string) error {
	query := `UPDATE system_user SET sys_pass = $1 WHERE sys_email = $2`
	result, err := r.DB.ExecContext(ctx, query, password, email)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotRegistered
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
