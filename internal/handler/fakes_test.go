package handler

import (
	"context"
	"time"

	"github.com/quillpost/quillpost/internal/model"
	"github.com/quillpost/quillpost/internal/repository"
)

// fakeUserStore is an in-memory UserStore for handler tests.
type fakeUserStore struct {
	byEmail map[string]*model.User
	nextID  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*model.User),
		nextID:  1,
	}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrEmailExists
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// fakePostStore is an in-memory PostStore for handler tests.
type fakePostStore struct {
	posts   map[int64]*model.Post
	authors map[int64]*model.User
	nextID  int64
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{
		posts:   make(map[int64]*model.Post),
		authors: make(map[int64]*model.User),
		nextID:  1,
	}
}

func (f *fakePostStore) addAuthor(user *model.User) {
	copied := *user
	copied.PasswordHash = ""
	f.authors[user.ID] = &copied
}

func (f *fakePostStore) CreatePost(ctx context.Context, post *model.Post) error {
	post.ID = f.nextID
	f.nextID++
	post.CreatedAt = time.Now()
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostStore) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostStore) GetPostWithAuthor(ctx context.Context, id int64) (*model.Post, error) {
	post, err := f.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author, ok := f.authors[post.AuthorID]; ok {
		copied := *author
		post.Author = &copied
	}
	return post, nil
}

func (f *fakePostStore) ListPostsByAuthor(ctx context.Context, authorID int64) ([]*model.Post, error) {
	result := make([]*model.Post, 0)
	for id := f.nextID - 1; id >= 1; id-- {
		post, ok := f.posts[id]
		if !ok || post.AuthorID != authorID {
			continue
		}
		copied := *post
		if author, ok := f.authors[post.AuthorID]; ok {
			authorCopy := *author
			copied.Author = &authorCopy
		}
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakePostStore) UpdatePost(ctx context.Context, post *model.Post) error {
	existing, ok := f.posts[post.ID]
	if !ok {
		return repository.ErrPostNotFound
	}
	existing.Title = post.Title
	existing.Content = post.Content
	return nil
}

func (f *fakePostStore) DeletePost(ctx context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}
