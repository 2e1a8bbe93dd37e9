package service

import (
	"context"

	"techsphere/internal/models"
	"techsphere/internal/repository"
)

// Authorization covers signup, credential checks and the login-minted token.
type Authorization interface {
	SignUp(ctx context.Context, p SignUpParams) (models.User, error)
	// Login verifies the credentials and returns the user together with a
	// freshly minted access token.
	Login(ctx context.Context, username, password string) (models.User, string, error)
	ParseToken(accessToken string) (string, error)
}

// Profile exposes the authenticated user's own record.
type Profile interface {
	Get(ctx context.Context, username string) (models.User, error)
	Update(ctx context.Context, username string, p ProfileParams) error
}

// Blog exposes post CRUD. Mutations take the acting username so ownership can
// be verified against the stored author.
type Blog interface {
	Create(ctx context.Context, author, title, content string) (models.Post, error)
	Feed(ctx context.Context) ([]models.Post, error)
	ByAuthor(ctx context.Context, author string) ([]models.Post, error)
	Get(ctx context.Context, id string) (models.Post, error)
	Edit(ctx context.Context, actor, id, title, content string) error
	Delete(ctx context.Context, actor, id string) error
}

// Root Service aggregates all sub-services.
type Service struct {
	Authorization
	Profile
	Blog
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Profile:       NewProfileService(repos.Users),
		Blog:          NewBlogService(repos.Posts),
	}
}
