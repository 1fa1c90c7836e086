package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/db"
	"github.com/yigit/advisory/internal/pkg/apperrors"
	"github.com/yigit/advisory/internal/pkg/dberrors"
)

// AccountRepository handles database operations for login accounts
type AccountRepository struct {
	db db.Querier
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(q db.Querier) *AccountRepository {
	return &AccountRepository{db: q}
}

// Create inserts an account and fills ID and CreatedAt
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	sql, args, err := sb.Insert("accounts").
		Columns("email", "password_hash", "role_type", "student_id", "is_active").
		Values(account.Email, account.PasswordHash, account.RoleType, account.StudentID, account.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert account: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&account.ID, &account.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.AccountsEmailKey) {
			return apperrors.ErrAccountAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByEmail retrieves an account by login email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	sql, args, err := sb.Select("id", "email", "password_hash", "role_type", "student_id", "is_active", "created_at").
		From("accounts").Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get account: %w", err)
	}

	var a models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.RoleType, &a.StudentID, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
