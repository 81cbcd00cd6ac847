package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
	ucauth "career-compass/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

// TokenStore remembers the single refresh token currently accepted per
// account so a rotated-out token presented again is treated as theft.
type TokenStore interface {
	SetCurrentRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	CurrentRefreshToken(ctx context.Context, userID uuid.UUID) (string, bool, error)
	ClearRefreshToken(ctx context.Context, userID uuid.UUID) error
}

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthResult struct {
	User   user.User
	Tokens TokenPair
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) error
	Login(ctx context.Context, username, password string) (AuthResult, error)
	GoogleLogin(ctx context.Context, credential string) (AuthResult, bool, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
	tokens  TokenStore
}

func NewAuthUsecase(authSvc *ucauth.Service, users user.Repository, jwtSvc jwt.Service, tokens TokenStore) *Auth {
	return &Auth{authSvc: authSvc, users: users, jwt: jwtSvc, tokens: tokens}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) error {
	return u.authSvc.Register(ctx, in)
}

func (u *Auth) Login(ctx context.Context, username, password string) (AuthResult, error) {
	usr, err := u.authSvc.Login(ctx, username, password)
	if err != nil {
		return AuthResult{}, err
	}

	pair, err := u.issueTokens(ctx, usr)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	return AuthResult{User: usr, Tokens: pair}, nil
}

func (u *Auth) GoogleLogin(ctx context.Context, credential string) (AuthResult, bool, error) {
	usr, created, err := u.authSvc.GoogleLogin(ctx, credential)
	if err != nil {
		return AuthResult{}, false, err
	}

	pair, err := u.issueTokens(ctx, usr)
	if err != nil {
		return AuthResult{}, false, ErrInternal
	}
	return AuthResult{User: usr, Tokens: pair}, created, nil
}

// Refresh rotates the token pair. A refresh token that was already rotated
// out invalidates the account's refresh state entirely: the presenter of a
// stale token may be an attacker holding a stolen copy.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	current, found, err := u.tokens.CurrentRefreshToken(ctx, claims.UserID)
	if err == nil && found && current != claims.ID {
		_ = u.tokens.ClearRefreshToken(ctx, claims.UserID)
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}

	return u.issueTokens(ctx, usr)
}

func (u *Auth) issueTokens(ctx context.Context, usr user.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, tokenID, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return TokenPair{}, err
	}
	if u.tokens != nil {
		_ = u.tokens.SetCurrentRefreshToken(ctx, usr.ID, tokenID, u.jwt.RefreshTTL())
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

var _ AuthUsecase = (*Auth)(nil)
