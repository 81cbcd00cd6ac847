package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(context.Background(), username)
	return err == nil, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(context.Background(), email)
	return err == nil, nil
}

type memoryTokenStore struct {
	current map[uuid.UUID]string
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{current: map[uuid.UUID]string{}}
}

func (m *memoryTokenStore) SetCurrentRefreshToken(_ context.Context, userID uuid.UUID, tokenID string, _ time.Duration) error {
	m.current[userID] = tokenID
	return nil
}

func (m *memoryTokenStore) CurrentRefreshToken(_ context.Context, userID uuid.UUID) (string, bool, error) {
	v, ok := m.current[userID]
	return v, ok, nil
}

func (m *memoryTokenStore) ClearRefreshToken(_ context.Context, userID uuid.UUID) error {
	delete(m.current, userID)
	return nil
}

func newTestAuth(t *testing.T, users *mockUserRepo, store TokenStore) (*Auth, jwt.Service) {
	t.Helper()
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	authSvc := ucauth.NewService(users, nil)
	return NewAuthUsecase(authSvc, users, jwtSvc, store), jwtSvc
}

func passwordUser(t *testing.T, username, password string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return user.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		Name:         "Test",
		PasswordHash: string(hash),
	}
}

func TestAuth_Login_RecordsRefreshState(t *testing.T) {
	usr := passwordUser(t, "ada", "secret123")
	store := newMemoryTokenStore()
	auth, jwtSvc := newTestAuth(t, newMockUserRepo(usr), store)

	res, err := auth.Login(context.Background(), "ada", "secret123")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Tokens.Access == "" || res.Tokens.Refresh == "" {
		t.Fatalf("expected both tokens")
	}

	claims, err := jwtSvc.ValidateToken(res.Tokens.Refresh)
	if err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
	if store.current[usr.ID] != claims.ID {
		t.Fatalf("store should hold the issued refresh token id")
	}
}

func TestAuth_Refresh_RotatesPair(t *testing.T) {
	usr := passwordUser(t, "ada", "secret123")
	store := newMemoryTokenStore()
	auth, jwtSvc := newTestAuth(t, newMockUserRepo(usr), store)

	res, err := auth.Login(context.Background(), "ada", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	pair, err := auth.Refresh(context.Background(), res.Tokens.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if pair.Refresh == res.Tokens.Refresh {
		t.Fatalf("refresh token must rotate")
	}

	claims, err := jwtSvc.ValidateToken(pair.Refresh)
	if err != nil {
		t.Fatalf("rotated refresh invalid: %v", err)
	}
	if store.current[usr.ID] != claims.ID {
		t.Fatalf("store must track the rotated token")
	}
}

func TestAuth_Refresh_ReuseInvalidatesFamily(t *testing.T) {
	usr := passwordUser(t, "ada", "secret123")
	store := newMemoryTokenStore()
	auth, _ := newTestAuth(t, newMockUserRepo(usr), store)

	res, err := auth.Login(context.Background(), "ada", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	old := res.Tokens.Refresh

	if _, err := auth.Refresh(context.Background(), old); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	// Presenting the superseded token is reuse: rejected, and the stored
	// state dropped so the newer token stops working too.
	if _, err := auth.Refresh(context.Background(), old); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken on reuse, got %v", err)
	}
	if _, ok := store.current[usr.ID]; ok {
		t.Fatalf("refresh state should be cleared after reuse")
	}
}

func TestAuth_Refresh_RejectsAccessToken(t *testing.T) {
	usr := passwordUser(t, "ada", "secret123")
	auth, _ := newTestAuth(t, newMockUserRepo(usr), newMemoryTokenStore())

	res, err := auth.Login(context.Background(), "ada", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := auth.Refresh(context.Background(), res.Tokens.Access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
}

func TestAuth_Refresh_RejectsGarbage(t *testing.T) {
	usr := passwordUser(t, "ada", "secret123")
	auth, _ := newTestAuth(t, newMockUserRepo(usr), newMemoryTokenStore())

	if _, err := auth.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, err := auth.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}
