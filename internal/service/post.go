package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quillpost/quillpost/internal/metrics"
	"github.com/quillpost/quillpost/internal/model"
	"github.com/quillpost/quillpost/internal/repository"
)

// Post service errors.
var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("not the owner of this post")
)

// PostStore is the persistence surface the post service needs.
// Implemented by *repository.Repository.
type PostStore interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	GetPostWithAuthor(ctx context.Context, id int64) (*model.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID int64) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id int64) error
}

// PostService handles post CRUD on behalf of an authenticated user.
// Every operation takes the verified caller's user ID explicitly.
type PostService struct {
	posts   PostStore
	metrics metrics.Recorder
}

// NewPostService creates a new PostService.
func NewPostService(posts PostStore, recorder metrics.Recorder) *PostService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &PostService{
		posts:   posts,
		metrics: recorder,
	}
}

// CreatePostInput defines input for creating a post.
type CreatePostInput struct {
	Title   string
	Content string
}

// CreatePost inserts a post owned by userID.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput, userID int64) (*model.Post, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	post := &model.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: userID,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.metrics.IncPostCreated()

	return post, nil
}

// ListPosts returns all posts owned by userID with authors embedded.
func (s *PostService) ListPosts(ctx context.Context, userID int64) ([]*model.Post, error) {
	posts, err := s.posts.ListPostsByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns the post with its author embedded.
// Existence is checked before ownership, so a missing post yields
// ErrPostNotFound and someone else's post yields ErrNotOwner.
func (s *PostService) GetPost(ctx context.Context, postID, userID int64) (*model.Post, error) {
	post, err := s.posts.GetPostWithAuthor(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	if !post.IsOwnedBy(userID) {
		return nil, ErrNotOwner
	}

	return post, nil
}

// UpdatePostInput defines the partial update payload. Nil fields are
// left unchanged; a provided field must be non-empty.
type UpdatePostInput struct {
	Title   *string
	Content *string
}

// UpdatePost applies the provided fields to an owned post and returns
// the merged record. The pre-update record is fetched without the
// author join; not-found and ownership checks mirror GetPost.
func (s *PostService) UpdatePost(ctx context.Context, postID, userID int64, input UpdatePostInput) (*model.Post, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	if !post.IsOwnedBy(userID) {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		post.Title = *input.Title
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
		}
		post.Content = *input.Content
	}

	if err := s.posts.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}

	s.metrics.IncPostUpdated()

	return post, nil
}

// DeletePost removes an owned post irreversibly.
// Same not-found and ownership checks as GetPost.
func (s *PostService) DeletePost(ctx context.Context, postID, userID int64) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("get post: %w", err)
	}

	if !post.IsOwnedBy(userID) {
		return ErrNotOwner
	}

	if err := s.posts.DeletePost(ctx, post.ID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}

	s.metrics.IncPostDeleted()

	return nil
}
