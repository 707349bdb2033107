package service

import (
	"context"
	"time"

	"github.com/quillpost/quillpost/internal/model"
	"github.com/quillpost/quillpost/internal/repository"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	byEmail map[string]*model.User
	nextID  int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*model.User), nextID: 1}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *model.User) error {
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

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// fakePostStore is an in-memory PostStore. Authors registered via
// addAuthor are embedded on the joined read paths, password hash
// stripped the way the SQL join leaves it unset.
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

func (f *fakePostStore) CreatePost(_ context.Context, post *model.Post) error {
	post.ID = f.nextID
	f.nextID++
	post.CreatedAt = time.Now()
	stored := *post
	stored.Author = nil
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostStore) GetPostByID(_ context.Context, id int64) (*model.Post, error) {
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
	post.Author = f.authors[post.AuthorID]
	return post, nil
}

func (f *fakePostStore) ListPostsByAuthor(_ context.Context, authorID int64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	for _, post := range f.posts {
		if post.AuthorID != authorID {
			continue
		}
		copied := *post
		copied.Author = f.authors[authorID]
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (f *fakePostStore) UpdatePost(_ context.Context, post *model.Post) error {
	stored, ok := f.posts[post.ID]
	if !ok {
		return repository.ErrPostNotFound
	}
	stored.Title = post.Title
	stored.Content = post.Content
	return nil
}

func (f *fakePostStore) DeletePost(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}
