package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dailysale/infrastructure/database/postgres"
)

func TestUserRepository_ConsumeCredits(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, remaining int, consumed bool, err error)
	}{
		{
			name: "Saldo suficiente é debitado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(consumeCreditsSQL)).
					WithArgs(2, 10).
					WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(3))
			},
			validate: func(t *testing.T, remaining int, consumed bool, err error) {
				require.NoError(t, err)
				assert.True(t, consumed)
				assert.Equal(t, 3, remaining)
			},
		},
		{
			name: "Saldo insuficiente não debita e devolve o saldo atual",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(consumeCreditsSQL)).
					WithArgs(2, 10).
					WillReturnRows(sqlmock.NewRows([]string{"credits"}))
				mock.ExpectQuery(`SELECT credits FROM users WHERE id = \$1`).
					WithArgs(10).
					WillReturnRows(sqlmock.NewRows([]string{"credits"}).AddRow(1))
			},
			validate: func(t *testing.T, remaining int, consumed bool, err error) {
				require.NoError(t, err)
				assert.False(t, consumed)
				assert.Equal(t, 1, remaining)
			},
		},
		{
			name: "Falha no banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(consumeCreditsSQL)).
					WithArgs(2, 10).
					WillReturnError(errors.New("timeout"))
			},
			validate: func(t *testing.T, remaining int, consumed bool, err error) {
				assert.Error(t, err)
				assert.False(t, consumed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			repo := NewUserRepository(postgres.Wrap(db))
			remaining, consumed, err := repo.ConsumeCredits(context.Background(), 10, 2)
			tt.validate(t, remaining, consumed, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserByLicenseKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, email, plan, license_key, credits, created_at, updated_at FROM users WHERE license_key = \$1`).
		WithArgs("AAA-BBB-CCC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "plan", "license_key", "credits", "created_at", "updated_at"}))

	repo := NewUserRepository(postgres.Wrap(db))
	user, err := repo.GetUserByLicenseKey(context.Background(), "AAA-BBB-CCC")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
