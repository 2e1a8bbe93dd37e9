package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techsphere/internal/models"
	"techsphere/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService handles user auth logic.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// SignUp hashes the password and creates a new user. The stored user is
// returned; the hash never leaves the model's json-hidden field.
func (s *AuthService) SignUp(ctx context.Context, p SignUpParams) (models.User, error) {
	hash, err := hashPassword(p.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	u := models.User{
		FullName:     p.FullName,
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

// Claims defines JWT claims carried by the login-minted token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Login validates credentials and returns the user plus a signed token.
// The token accompanies the session but gates nothing; no route checks it.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.User, string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, "", err
	}
	if u == nil {
		return models.User{}, "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.User{}, "", ErrInvalidPassword
	}

	token, err := s.issueToken(u.Username)
	if err != nil {
		return models.User{}, "", err
	}
	return *u, token, nil
}

// ParseToken parses a token and returns the username it was issued for.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.Username, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a username
func (s *AuthService) issueToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	})
	return token.SignedString(s.signingKey)
}
