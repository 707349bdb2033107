//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/quillpost/quillpost/internal/model"
	"github.com/quillpost/quillpost/internal/testutil"
)

// newTestEnv connects to the test database, serializes access with an
// advisory lock, and starts from empty tables. Skips when
// TEST_DATABASE_URL is not set.
func newTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()

	databaseURL := testutil.RequireEnv(t, "TEST_DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	repo, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("connect to test database: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire DB lock: %v", err)
	}
	t.Cleanup(func() {
		if err := unlock(); err != nil {
			t.Errorf("release DB lock: %v", err)
		}
	})

	if err := testutil.TruncateAll(ctx, repo.Pool()); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return ctx, repo
}

// seedUser inserts a user with a throwaway hash for post ownership tests.
func seedUser(t *testing.T, ctx context.Context, repo *Repository, email string) *model.User {
	t.Helper()

	user := &model.User{
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g",
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}
