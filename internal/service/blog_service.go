package service

import (
	"context"
	"errors"
	"time"

	"techsphere/internal/models"
	"techsphere/internal/repository"

	"github.com/google/uuid"
)

// Domain errors for blog flows.
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("post belongs to another user")
)

// BlogService handles post CRUD on top of the post repository.
type BlogService struct {
	posts repository.Posts
}

func NewBlogService(posts repository.Posts) *BlogService {
	return &BlogService{posts: posts}
}

// Create persists a new post authored by the given username.
func (s *BlogService) Create(ctx context.Context, author, title, content string) (models.Post, error) {
	p := models.Post{
		ID:        uuid.NewString(),
		Author:    author,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// Feed returns every post in natural storage order.
func (s *BlogService) Feed(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListAll(ctx)
}

// ByAuthor returns all posts created by the given username.
func (s *BlogService) ByAuthor(ctx context.Context, author string) ([]models.Post, error) {
	return s.posts.ListByAuthor(ctx, author)
}

// Get returns the post with the given identifier.
func (s *BlogService) Get(ctx context.Context, id string) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if p == nil {
		return models.Post{}, ErrPostNotFound
	}
	return *p, nil
}

// Edit overwrites title and content of the post, leaving author and creation
// time untouched. The actor must own the post.
func (s *BlogService) Edit(ctx context.Context, actor, id, title, content string) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if p.Author != actor {
		return ErrNotOwner
	}

	matched, err := s.posts.Update(ctx, id, title, content)
	if err != nil {
		return err
	}
	if matched == 0 {
		// The post vanished between the ownership check and the write.
		return ErrPostNotFound
	}
	return nil
}

// Delete removes the post if the actor owns it. A nonexistent identifier is
// a no-op reported as success, preserving upstream behavior.
func (s *BlogService) Delete(ctx context.Context, actor, id string) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	if p.Author != actor {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, id)
}
