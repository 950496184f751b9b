package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/dailysale/infrastructure/database/postgres"
	"github.com/vfg2006/dailysale/internal/domain"
)

const (
	usersTable = "users"
)

// consumeCreditsSQL debita apenas se houver saldo. Duas chamadas concorrentes nunca deixam o saldo negativo.
const consumeCreditsSQL = `UPDATE users SET credits = credits - $1, updated_at = NOW() WHERE id = $2 AND credits >= $1 RETURNING credits`

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByLicenseKey(ctx context.Context, key string) (*domain.User, error)
	SetLicenseKey(ctx context.Context, userID int, key string) error
	// ConsumeCredits retorna o saldo final e se o débito aconteceu
	ConsumeCredits(ctx context.Context, userID int, amount int) (int, bool, error)
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	queryBuilder := squirrel.
		Insert(usersTable).
		Columns("email", "plan", "license_key", "credits").
		Values(user.Email, user.Plan, user.LicenseKey, user.Credits).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) getUserBy(ctx context.Context, column string, value any) (*domain.User, error) {
	usersSQL, usersArgs, err := squirrel.
		Select("id", "email", "plan", "license_key", "credits", "created_at", "updated_at").
		From(usersTable).
		Where(squirrel.Eq{column: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, usersSQL, usersArgs...).Scan(
		&user.ID,
		&user.Email,
		&user.Plan,
		&user.LicenseKey,
		&user.Credits,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserBy(ctx, "email", email)
}

func (r *userRepository) GetUserByLicenseKey(ctx context.Context, key string) (*domain.User, error) {
	return r.getUserBy(ctx, "license_key", key)
}

func (r *userRepository) SetLicenseKey(ctx context.Context, userID int, key string) error {
	usersSQL, usersArgs, err := squirrel.
		Update(usersTable).
		Set("license_key", key).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, usersSQL, usersArgs...); err != nil {
		return fmt.Errorf("erro ao vincular licença: %w", err)
	}

	return nil
}

func (r *userRepository) ConsumeCredits(ctx context.Context, userID int, amount int) (int, bool, error) {
	var remaining int
	err := r.conn.QueryRowContext(ctx, consumeCreditsSQL, amount, userID).Scan(&remaining)
	if err == nil {
		return remaining, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, fmt.Errorf("erro ao debitar créditos: %w", err)
	}

	// Sem saldo suficiente: devolve o saldo atual para a resposta
	err = r.conn.QueryRowContext(ctx, "SELECT credits FROM users WHERE id = $1", userID).Scan(&remaining)
	if err != nil {
		return 0, false, fmt.Errorf("erro ao consultar créditos: %w", err)
	}

	return remaining, false, nil
}
