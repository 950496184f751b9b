package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dailysale/infrastructure/database/postgres"
	"github.com/vfg2006/dailysale/internal/domain"
)

const (
	licensesTable = "licenses"
)

var licenseColumns = []string{
	"id",
	"key",
	"plan",
	"active",
	"max_runs_per_month",
	"used_runs_this_period",
	"period_start",
	"created_at",
	"updated_at",
}

type LicenseRepository interface {
	GetByKey(ctx context.Context, key string) (*domain.License, error)
	Create(ctx context.Context, license *domain.License) (*domain.License, error)
	Deactivate(ctx context.Context, key string) error
	// ConsumeQuota trava a linha da licença, aplica a política e grava o resultado na mesma transação.
	// Retorna nil, nil quando a licença não existe.
	ConsumeQuota(ctx context.Context, key string, apply func(*domain.License) error) (*domain.License, error)
	ResetExpiredPeriods(ctx context.Context, periodStart time.Time) (int64, error)
}

type licenseRepository struct {
	conn postgres.Conn
}

func NewLicenseRepository(conn postgres.Conn) LicenseRepository {
	return &licenseRepository{
		conn: conn,
	}
}

func scanLicense(row *sql.Row) (*domain.License, error) {
	var license domain.License
	err := row.Scan(
		&license.ID,
		&license.Key,
		&license.Plan,
		&license.Active,
		&license.MaxRunsPerMonth,
		&license.UsedRunsThisPeriod,
		&license.PeriodStart,
		&license.CreatedAt,
		&license.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &license, nil
}

func (r *licenseRepository) GetByKey(ctx context.Context, key string) (*domain.License, error) {
	query, args, err := squirrel.
		Select(licenseColumns...).
		From(licensesTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	license, err := scanLicense(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar licença: %w", err)
	}

	return license, nil
}

func (r *licenseRepository) Create(ctx context.Context, license *domain.License) (*domain.License, error) {
	query, args, err := squirrel.
		Insert(licensesTable).
		Columns("key", "plan", "active", "max_runs_per_month", "used_runs_this_period", "period_start").
		Values(license.Key, license.Plan, license.Active, license.MaxRunsPerMonth, license.UsedRunsThisPeriod, license.PeriodStart).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&license.ID, &license.CreatedAt, &license.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar licença: %w", err)
	}

	return license, nil
}

func (r *licenseRepository) Deactivate(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Update(licensesTable).
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao desativar licença: %w", err)
	}

	return nil
}

func (r *licenseRepository) ConsumeQuota(ctx context.Context, key string, apply func(*domain.License) error) (*domain.License, error) {
	var result *domain.License

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Select(licenseColumns...).
			From(licensesTable).
			Where(squirrel.Eq{"key": key}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		license, err := scanLicense(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("erro ao travar licença: %w", err)
		}

		result = license
		if err := apply(license); err != nil {
			return err
		}

		update, updateArgs, err := squirrel.
			Update(licensesTable).
			Set("used_runs_this_period", license.UsedRunsThisPeriod).
			Set("period_start", license.PeriodStart).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": license.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir atualização: %w", err)
		}

		if _, err := tx.ExecContext(ctx, update, updateArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar cota: %w", err)
		}

		return nil
	})

	return result, err
}

// ResetExpiredPeriods zera o uso de todas as licenças cujo período começou antes de periodStart
func (r *licenseRepository) ResetExpiredPeriods(ctx context.Context, periodStart time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(licensesTable).
		Set("used_runs_this_period", 0).
		Set("period_start", periodStart).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Lt{"period_start": periodStart}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	res, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao reiniciar períodos: %w", err)
	}

	return res.RowsAffected()
}
