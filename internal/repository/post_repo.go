package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"techsphere/internal/models"

	"github.com/google/uuid"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository { return &PostRepository{db: db} }

var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL = `INSERT INTO posts (id, author, title, content, created_at) VALUES (?, ?, ?, ?, ?)`

	selectPostByIDSQL = `SELECT id, author, title, content, created_at FROM posts WHERE id = ?`

	selectAllPostsSQL = `SELECT id, author, title, content, created_at FROM posts`

	selectPostsByAuthorSQL = `SELECT id, author, title, content, created_at FROM posts WHERE author = ?`

	updatePostSQL = `UPDATE posts SET title = ?, content = ? WHERE id = ?`

	deletePostSQL = `DELETE FROM posts WHERE id = ?`
)

// Create inserts a new post. If ID or CreatedAt are empty, they’re set.
func (r *PostRepository) Create(ctx context.Context, p models.Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	} else {
		p.CreatedAt = p.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertPostSQL,
		p.ID,
		p.Author,
		p.Title,
		p.Content,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.Title, err)
	}
	return nil
}

// GetByID fetches a post by identifier. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).
		Scan(&p.ID, &p.Author, &p.Title, &p.Content, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", id, err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

// ListAll returns every post in natural storage order.
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	return r.list(ctx, selectAllPostsSQL)
}

// ListByAuthor returns all posts whose author equals the given username.
func (r *PostRepository) ListByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	return r.list(ctx, selectPostsByAuthorSQL, author)
}

func (r *PostRepository) list(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 16)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Author, &p.Title, &p.Content, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return out, nil
}

// Update overwrites title and content only; author and created_at are left
// untouched. Returns the number of rows matched.
func (r *PostRepository) Update(ctx context.Context, id, title, content string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updatePostSQL, title, content, id)
	if err != nil {
		return 0, fmt.Errorf("update post %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for post %q: %w", id, err)
	}
	return affected, nil
}

// Delete removes the post row. A zero-row delete is not an error.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deletePostSQL, id); err != nil {
		return fmt.Errorf("delete post %q: %w", id, err)
	}
	return nil
}
