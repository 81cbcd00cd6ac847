package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/identity"

	"github.com/google/uuid"
)

type memoryUserRepo struct {
	byUsername map[string]user.User
	byEmail    map[string]user.User
	created    []user.User
	err        error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byUsername: map[string]user.User{}, byEmail: map[string]user.User{}}
}

func (m *memoryUserRepo) add(u user.User) {
	m.byUsername[u.Username] = u
	m.byEmail[u.Email] = u
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, u)
	m.add(u)
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	if u, ok := m.byUsername[username]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, m.err
}

func (m *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, m.err
}

type stubVerifier struct {
	claims identity.Claims
	err    error
}

func (s stubVerifier) Verify(context.Context, string) (identity.Claims, error) {
	return s.claims, s.err
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:      "Ada",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "secret123",
		Password2: "secret123",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, stubVerifier{})

	if err := svc.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created user, got %d", len(repo.created))
	}
	created := repo.created[0]
	if created.PasswordHash == "" || created.PasswordHash == "secret123" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, stubVerifier{})

	in := validRegisterInput()
	in.Password2 = "different"
	err := svc.Register(context.Background(), in)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Fields["password"] != "Passwords must match" {
		t.Fatalf("unexpected password error: %q", vErr.Fields["password"])
	}
	if len(repo.created) != 0 {
		t.Fatalf("no user should be created")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.add(user.User{ID: uuid.New(), Username: "other", Email: "ada@example.com"})
	svc := NewService(repo, stubVerifier{})

	err := svc.Register(context.Background(), validRegisterInput())

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.Fields["email"]; !ok {
		t.Fatalf("expected email field error, got %v", vErr.Fields)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.add(user.User{ID: uuid.New(), Username: "ada", Email: "elsewhere@example.com"})
	svc := NewService(repo, stubVerifier{})

	err := svc.Register(context.Background(), validRegisterInput())

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Fields["username"] != "Username already exists" {
		t.Fatalf("unexpected username error: %v", vErr.Fields)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := newMemoryUserRepo()
	repo.add(user.User{ID: uuid.New(), Username: "ada", Email: "ada@example.com", PasswordHash: string(hash)})
	svc := NewService(repo, stubVerifier{})

	u, err := svc.Login(context.Background(), "ada", "secret123")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username != "ada" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := newMemoryUserRepo()
	repo.add(user.User{ID: uuid.New(), Username: "ada", Email: "ada@example.com", PasswordHash: string(hash)})
	svc := NewService(repo, stubVerifier{})

	_, errWrongPw := svc.Login(context.Background(), "ada", "nope")
	_, errUnknown := svc.Login(context.Background(), "ghost", "nope")

	if !errors.Is(errWrongPw, ErrInvalidCredentials) || !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("both failures must be ErrInvalidCredentials, got %v / %v", errWrongPw, errUnknown)
	}
}

func TestLogin_GoogleOnlyAccountHasNoPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.add(user.User{ID: uuid.New(), Username: "ada", Email: "ada@example.com", GoogleSub: "sub-1"})
	svc := NewService(repo, stubVerifier{})

	_, err := svc.Login(context.Background(), "ada", "anything")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGoogleLogin_CreatesAccountOnFirstSight(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, stubVerifier{claims: identity.Claims{
		Email:   "new@example.com",
		Name:    "New User",
		Subject: "google-sub-1",
	}})

	u, created, err := svc.GoogleLogin(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatalf("expected is_new_user=true")
	}
	if u.Email != "new@example.com" || u.GoogleSub != "google-sub-1" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one created account")
	}
}

func TestGoogleLogin_RepeatLoginCreatesNothing(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, stubVerifier{claims: identity.Claims{Email: "new@example.com", Name: "New User"}})

	_, created1, err := svc.GoogleLogin(context.Background(), "token")
	if err != nil || !created1 {
		t.Fatalf("first login: created=%v err=%v", created1, err)
	}
	_, created2, err := svc.GoogleLogin(context.Background(), "token")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if created2 {
		t.Fatalf("expected is_new_user=false on repeat login")
	}
	if len(repo.created) != 1 {
		t.Fatalf("repeat login must not create another account, got %d", len(repo.created))
	}
}

func TestGoogleLogin_InvalidToken(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewService(repo, stubVerifier{err: identity.ErrInvalidToken})

	_, _, err := svc.GoogleLogin(context.Background(), "garbage")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestGoogleLogin_UsernameCollisionGetsSuffix(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.add(user.User{ID: uuid.New(), Username: "New User", Email: "old@example.com"})
	svc := NewService(repo, stubVerifier{claims: identity.Claims{Email: "new@example.com", Name: "New User"}})

	u, _, err := svc.GoogleLogin(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Username == "New User" || len(u.Username) <= len("New User") {
		t.Fatalf("expected suffixed username, got %q", u.Username)
	}
}
