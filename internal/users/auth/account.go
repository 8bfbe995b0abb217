// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package auth implements admin authentication.

Folio is a single-admin system: one account, seeded at deploy time, gates
every mutating route. Login verifies the bcrypt password hash and issues a
short-lived RSA-signed access token plus an opaque refresh token held in
Redis. Refresh rotates the opaque token; logout revokes it.
*/
package auth

import (
	"context"
	"time"
)

// Account is the admin account row.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccountRepository is the storage contract for the admin account. A nil
// AccountRepository means the relational store is unconfigured and login is
// impossible.
type AccountRepository interface {
	FindByID(context context.Context, id string) (*Account, error)
	// FindByLogin resolves the account by username or email.
	FindByLogin(context context.Context, login string) (*Account, error)
}

// RefreshTokenRepository stores opaque refresh tokens, keyed by token hash,
// with their owning account id as the value.
type RefreshTokenRepository interface {
	Set(context context.Context, tokenHash, accountID string, ttl time.Duration) error
	Get(context context.Context, tokenHash string) (string, error)
	Delete(context context.Context, tokenHash string) error
}
