// Package model defines domain entities for the application.
package model

import "time"

// Post represents a blog post owned by a single user.
// AuthorID is immutable after creation; Author is populated only on
// read paths that join the owning user.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsOwnedBy reports whether the post belongs to the given user.
func (p *Post) IsOwnedBy(userID int64) bool {
	return p.AuthorID == userID
}
