// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/longpd/folio/internal/platform/database/schema"
	"github.com/longpd/folio/internal/platform/dberr"
)

type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func accountColumns() string {
	t := schema.UsersAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s", t.ID, t.Username, t.Email, t.PasswordHash, t.CreatedAt)
}

func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns(), t.Table, t.ID)

	return repository.scanOne(context, query, id)
}

func (repository *PostgresAccountRepository) FindByLogin(context context.Context, login string) (*Account, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 OR %s = $1`,
		accountColumns(), t.Table, t.Username, t.Email)

	return repository.scanOne(context, query, login)
}

func (repository *PostgresAccountRepository) scanOne(context context.Context, query string, arg any) (*Account, error) {
	var account Account
	err := repository.db.QueryRow(context, query, arg).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_account")
	}
	return &account, nil
}
