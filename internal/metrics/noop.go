package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncSignup is a no-op.
func (n *NoopRecorder) IncSignup() {}

// IncLogin is a no-op.
func (n *NoopRecorder) IncLogin() {}

// IncAuthFailure is a no-op.
func (n *NoopRecorder) IncAuthFailure() {}

// IncPostCreated is a no-op.
func (n *NoopRecorder) IncPostCreated() {}

// IncPostUpdated is a no-op.
func (n *NoopRecorder) IncPostUpdated() {}

// IncPostDeleted is a no-op.
func (n *NoopRecorder) IncPostDeleted() {}
