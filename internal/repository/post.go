package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/quillpost/quillpost/internal/model"
)

// ErrPostNotFound indicates no post exists with the given ID.
var ErrPostNotFound = errors.New("post not found")

// CreatePost inserts a new post and fills in the generated ID and
// creation timestamp.
func (r *Repository) CreatePost(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetPostByID retrieves a post by ID without joining the author.
// Used for the pre-mutation existence and ownership checks.
func (r *Repository) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	query := `
		SELECT id, title, content, author_id, created_at
		FROM posts
		WHERE id = $1
	`

	var post model.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID: %w", err)
	}

	return &post, nil
}

// GetPostWithAuthor retrieves a post by ID with its author embedded.
func (r *Repository) GetPostWithAuthor(ctx context.Context, id int64) (*model.Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.author_id, p.created_at,
		       u.id, u.email, u.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	post, err := scanPostWithAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post with author: %w", err)
	}

	return post, nil
}

// ListPostsByAuthor retrieves all posts owned by the given user,
// newest first, with the author embedded in each.
func (r *Repository) ListPostsByAuthor(ctx context.Context, authorID int64) ([]*model.Post, error) {
	query := `
		SELECT p.id, p.title, p.content, p.author_id, p.created_at,
		       u.id, u.email, u.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*model.Post, 0)
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// UpdatePost persists a post's mutable fields (title, content).
func (r *Repository) UpdatePost(ctx context.Context, post *model.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Content,
	)

	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post irreversibly.
func (r *Repository) DeletePost(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

// scanPostWithAuthor scans a joined post+user row.
func scanPostWithAuthor(row pgx.Row) (*model.Post, error) {
	var post model.Post
	var author model.User
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&author.ID,
		&author.Email,
		&author.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	post.Author = &author
	return &post, nil
}
