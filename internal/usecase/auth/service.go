package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/identity"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid identity token")
	ErrInternal           = errors.New("internal error")
)

// ValidationError carries field-level registration failures, keyed by the
// request field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type RegisterInput struct {
	Name      string
	Username  string
	Email     string
	Password  string
	Password2 string
}

type Service struct {
	users    user.Repository
	verifier identity.Verifier
}

func NewService(users user.Repository, verifier identity.Verifier) *Service {
	return &Service{users: users, verifier: verifier}
}

// Register creates a password-credentialed account. All field checks are
// collected into one ValidationError so the client sees every problem at
// once.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	fields := map[string]string{}

	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)

	if username == "" {
		fields["username"] = "Username is required"
	}
	if email == "" {
		fields["email"] = "Email is required"
	}
	if in.Password == "" {
		fields["password"] = "Password is required"
	} else if in.Password != in.Password2 {
		fields["password"] = "Passwords must match"
	}

	if username != "" {
		taken, err := s.users.ExistsByUsername(ctx, username)
		if err != nil {
			return ErrInternal
		}
		if taken {
			fields["username"] = "Username already exists"
		}
	}
	if email != "" {
		taken, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return ErrInternal
		}
		if taken {
			fields["email"] = "Email already attached to another account."
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return ErrInternal
	}
	return nil
}

// Login verifies a username/password pair. Failures are indistinguishable to
// the caller: unknown username and wrong password both return
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}
	if u.PasswordHash == "" {
		return user.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return u, nil
}

// GoogleLogin verifies the identity token and finds or creates the matching
// account by email. The bool reports whether a new account was created.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (user.User, bool, error) {
	claims, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		return user.User{}, false, ErrInvalidToken
	}

	u, err := s.users.GetByEmail(ctx, claims.Email)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, false, ErrInternal
	}

	username, err := s.availableUsername(ctx, claims)
	if err != nil {
		return user.User{}, false, ErrInternal
	}

	created := user.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     claims.Email,
		Name:      claims.Name,
		GoogleSub: claims.Subject,
	}
	if err := s.users.Create(ctx, created); err != nil {
		return user.User{}, false, ErrInternal
	}
	return created, true, nil
}

// availableUsername derives a username from the verified name, falling back
// to the email local part, and suffixes it when taken.
func (s *Service) availableUsername(ctx context.Context, claims identity.Claims) (string, error) {
	base := strings.TrimSpace(claims.Name)
	if base == "" {
		base = claims.Email
		if at := strings.Index(base, "@"); at > 0 {
			base = base[:at]
		}
	}

	taken, err := s.users.ExistsByUsername(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
