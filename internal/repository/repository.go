package repository

import (
	"context"
	"database/sql"

	"techsphere/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Update overwrites full name, email and password hash for the given
	// username and returns the number of rows matched.
	Update(ctx context.Context, username, fullName, email, passwordHash string) (int64, error)
}

type Posts interface {
	Create(ctx context.Context, p models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, author string) ([]models.Post, error)
	Update(ctx context.Context, id, title, content string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}
