package identity

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/idtoken"
)

var ErrInvalidToken = errors.New("invalid identity token")

// Claims are the verified fields this service needs from a Google ID token.
type Claims struct {
	Email   string
	Name    string
	Subject string
}

// Verifier checks a Google-issued ID token's signature and audience and
// returns its identity claims.
type Verifier interface {
	Verify(ctx context.Context, credential string) (Claims, error)
}

type GoogleVerifier struct {
	audience string
}

// NewGoogleVerifier verifies tokens against the given OAuth client ID. An
// empty client ID skips the audience check, matching the permissive behavior
// of a locally configured deployment.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{audience: strings.TrimSpace(clientID)}
}

func (v *GoogleVerifier) Verify(ctx context.Context, credential string) (Claims, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return Claims{}, ErrInvalidToken
	}

	payload, err := idtoken.Validate(ctx, credential, v.audience)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return Claims{}, ErrInvalidToken
	}
	name, _ := payload.Claims["name"].(string)

	return Claims{
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Name:    strings.TrimSpace(name),
		Subject: payload.Subject,
	}, nil
}

var _ Verifier = (*GoogleVerifier)(nil)
