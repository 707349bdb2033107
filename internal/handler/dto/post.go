package dto

import (
	"time"

	"github.com/quillpost/quillpost/internal/model"
)

// CreatePostRequest represents the request body for creating a post.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest represents the partial update body. Omitted fields
// are left unchanged.
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// AuthorResponse represents a post's author in API responses.
type AuthorResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResponse represents a post in API responses.
type PostResponse struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	AuthorID  int64           `json:"author_id"`
	Author    *AuthorResponse `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// PostMessageResponse wraps a post mutation result with a message.
type PostMessageResponse struct {
	Message string        `json:"message"`
	Post    *PostResponse `json:"post,omitempty"`
}

// UpdatePostResponse wraps an update result with a message.
type UpdatePostResponse struct {
	Message     string        `json:"message"`
	UpdatedPost *PostResponse `json:"updated_post"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToPostResponse converts a Post model to a PostResponse DTO.
func ToPostResponse(post *model.Post) *PostResponse {
	resp := &PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
	}
	if post.Author != nil {
		resp.Author = &AuthorResponse{
			ID:        post.Author.ID,
			Email:     post.Author.Email,
			CreatedAt: post.Author.CreatedAt,
		}
	}
	return resp
}

// ToPostListResponse converts a slice of Post models to DTOs.
func ToPostListResponse(posts []*model.Post) []*PostResponse {
	responses := make([]*PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToPostResponse(post)
	}
	return responses
}
