package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Signups      uint64
	Logins       uint64
	AuthFailures uint64
	PostsCreated uint64
	PostsUpdated uint64
	PostsDeleted uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	signups      uint64
	logins       uint64
	authFailures uint64
	postsCreated uint64
	postsUpdated uint64
	postsDeleted uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		Signups:      atomic.LoadUint64(&m.signups),
		Logins:       atomic.LoadUint64(&m.logins),
		AuthFailures: atomic.LoadUint64(&m.authFailures),
		PostsCreated: atomic.LoadUint64(&m.postsCreated),
		PostsUpdated: atomic.LoadUint64(&m.postsUpdated),
		PostsDeleted: atomic.LoadUint64(&m.postsDeleted),
	}
}

// IncSignup increments the successful signup counter.
func (m *InMemoryRecorder) IncSignup() {
	atomic.AddUint64(&m.signups, 1)
}

// IncLogin increments the successful login counter.
func (m *InMemoryRecorder) IncLogin() {
	atomic.AddUint64(&m.logins, 1)
}

// IncAuthFailure increments the failed credential check counter.
func (m *InMemoryRecorder) IncAuthFailure() {
	atomic.AddUint64(&m.authFailures, 1)
}

// IncPostCreated increments the post created counter.
func (m *InMemoryRecorder) IncPostCreated() {
	atomic.AddUint64(&m.postsCreated, 1)
}

// IncPostUpdated increments the post updated counter.
func (m *InMemoryRecorder) IncPostUpdated() {
	atomic.AddUint64(&m.postsUpdated, 1)
}

// IncPostDeleted increments the post deleted counter.
func (m *InMemoryRecorder) IncPostDeleted() {
	atomic.AddUint64(&m.postsDeleted, 1)
}
