// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/longpd/folio/internal/platform/apperr"
	"github.com/longpd/folio/internal/platform/constants"
	"github.com/longpd/folio/internal/platform/sec"
)

// RefreshTokenLength is the byte length of the opaque refresh token.
const RefreshTokenLength = 32

// TokenProvider signs admin access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

type Service struct {
	accounts      AccountRepository // nil when the store is unconfigured
	refreshTokens RefreshTokenRepository
	tokens        TokenProvider
	logger        *slog.Logger
}

func NewService(accounts AccountRepository, refreshTokens RefreshTokenRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		accounts:      accounts,
		refreshTokens: refreshTokens,
		tokens:        tokens,
		logger:        logger,
	}
}

// LoginInput holds the admin credentials; login may be username or email.
type LoginInput struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Session is a freshly issued token pair.
type Session struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	Username              string    `json:"username"`
}

// Login verifies the admin credentials and issues a token pair. Credential
// failures are deliberately indistinguishable from an unknown login.
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	if service.accounts == nil {
		return nil, apperr.NotConfigured("Account store is not configured; admin login is disabled")
	}

	account, err := service.accounts.FindByLogin(context, input.Login)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("admin_login", slog.String("account_id", account.ID))
	return session, nil
}

// Refresh rotates the refresh token: the presented token is consumed before
// a new pair is issued, so it can never be replayed.
func (service *Service) Refresh(context context.Context, refreshToken string) (*Session, error) {
	if service.accounts == nil {
		return nil, apperr.NotConfigured("Account store is not configured; admin login is disabled")
	}

	tokenHash := sec.HashToken(refreshToken)

	accountID, err := service.refreshTokens.Get(context, tokenHash)
	if err != nil {
		return nil, err
	}

	if err := service.refreshTokens.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("auth: refresh rotation failed: %w", err)
	}

	account, err := service.accounts.FindByID(context, accountID)
	if err != nil {
		return nil, apperr.Unauthorized("Account no longer exists")
	}

	return service.issueSession(context, account)
}

// Logout revokes the presented refresh token. Revoking an unknown token is
// a no-op; logout is idempotent.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.refreshTokens.Delete(context, sec.HashToken(refreshToken))
}

func (service *Service) issueSession(context context.Context, account *Account) (*Session, error) {
	accessToken, err := service.tokens.GenerateAccessToken(account.ID, account.Username, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth: access token generation failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth: refresh token generation failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.refreshTokens.Set(context, sec.HashToken(refreshToken), account.ID, constants.RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Username:              account.Username,
	}, nil
}
