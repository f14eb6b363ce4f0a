package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lrlucasdurand-code/unify/infrastructure/database/postgres"
	"github.com/lrlucasdurand-code/unify/internal/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id", "email", "full_name", "password_hash", "active", "role_id", "organization_id", "created_at", "updated_at",
}

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

type UserRepository interface {
	CreateWithOrganization(ctx context.Context, user *domain.User, org *domain.Organization) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	CountActive(ctx context.Context) (int, error)
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// CreateWithOrganization cria a organização e o seu primeiro usuário na mesma transação
func (r *userRepository) CreateWithOrganization(ctx context.Context, user *domain.User, org *domain.Organization) (*domain.User, error) {
	err := r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		orgSQL, orgArgs, err := squirrel.
			Insert(organizationsTable).
			Columns("name", "plan").
			Values(org.Name, org.Plan).
			Suffix("RETURNING id, created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := q.QueryRowContext(ctx, orgSQL, orgArgs...).Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao criar organização: %w", err)
		}

		user.OrganizationID = org.ID

		userSQL, userArgs, err := squirrel.
			Insert(usersTable).
			Columns("email", "full_name", "password_hash", "active", "role_id", "organization_id").
			Values(user.Email, user.FullName, user.PasswordHash, user.Active, user.RoleID, user.OrganizationID).
			Suffix("RETURNING id, created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := q.QueryRowContext(ctx, userSQL, userArgs...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao criar usuário: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var (
		user  domain.User
		orgID sql.NullInt64
	)
	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&orgID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.OrganizationID = int(orgID.Int64)
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	usersSQL, usersArgs, err := squirrel.
		Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, usersSQL, usersArgs...)
	return err
}

func (r *userRepository) CountActive(ctx context.Context) (int, error) {
	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(usersTable).
		Where(squirrel.Eq{"active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}
