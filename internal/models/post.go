package models

import "time"

// Post is a single blog entry. Author is a denormalized copy of the creating
// user's username, not a foreign key. Title is unique across all posts.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
