package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"techsphere/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// mockUsersRepo is a lightweight in-test mock for repository.Users.
type mockUsersRepo struct {
	CreateFn        func(ctx context.Context, u models.User) (int64, error)
	GetByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	UpdateFn        func(ctx context.Context, username, fullName, email, passwordHash string) (int64, error)

	createCalls []models.User
	getCalls    []string
}

func (m *mockUsersRepo) Create(ctx context.Context, u models.User) (int64, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(ctx, u)
}

func (m *mockUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(ctx, username)
}

func (m *mockUsersRepo) Update(ctx context.Context, username, fullName, email, passwordHash string) (int64, error) {
	return m.UpdateFn(ctx, username, fullName, email, passwordHash)
}

const testSigningKey = "test-signing-key"

// --- SignUp tests ---

func TestAuthService_SignUp_HashesPasswordAndReturnsStoredUser(t *testing.T) {
	mock := &mockUsersRepo{
		CreateFn: func(ctx context.Context, u models.User) (int64, error) {
			return 42, nil
		},
	}
	svc := NewAuthService(mock, testSigningKey)

	u, err := svc.SignUp(context.Background(), SignUpParams{
		FullName: "Ann Smith",
		Username: "ann",
		Email:    "ann@example.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if u.ID != 42 || u.Username != "ann" || u.Email != "ann@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	stored := mock.createCalls[0]
	if stored.PasswordHash == "password1" {
		t.Fatalf("password stored raw, expected a hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	svc := NewAuthService(&mockUsersRepo{}, testSigningKey)

	if _, err := svc.SignUp(context.Background(), SignUpParams{Username: "ann", Password: "   "}); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	repoErr := errors.New("UNIQUE constraint failed: users.email")
	mock := &mockUsersRepo{
		CreateFn: func(ctx context.Context, u models.User) (int64, error) {
			return 0, repoErr
		},
	}
	svc := NewAuthService(mock, testSigningKey)

	if _, err := svc.SignUp(context.Background(), SignUpParams{Username: "ann", Password: "password1"}); !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

// --- Login tests ---

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash := mustHash(t, "password1")
	mock := &mockUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{ID: 7, Username: "ann", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, testSigningKey)

	u, token, err := svc.Login(context.Background(), "ann", "password1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if u.Username != "ann" {
		t.Fatalf("expected user ann, got %q", u.Username)
	}
	if token == "" {
		t.Fatalf("expected a minted token")
	}

	// The minted token parses back to the issuing username.
	username, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if username != "ann" {
		t.Fatalf("expected username ann from token, got %q", username)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mock := &mockUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(mock, testSigningKey)

	if _, _, err := svc.Login(context.Background(), "ghost", "password1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash := mustHash(t, "password1")
	mock := &mockUsersRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*models.User, error) {
			return &models.User{Username: "ann", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, testSigningKey)

	if _, _, err := svc.Login(context.Background(), "ann", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	other := NewAuthService(&mockUsersRepo{}, "another-key")
	token, err := other.issueToken("ann")
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	svc := NewAuthService(&mockUsersRepo{}, testSigningKey)
	if _, err := svc.ParseToken(token); err == nil {
		t.Fatalf("expected error for token signed with a different key")
	}
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
		Username: "ann",
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := NewAuthService(&mockUsersRepo{}, testSigningKey)
	if _, err := svc.ParseToken(signed); err == nil {
		t.Fatalf("expected error for expired token")
	}
}
