package snapshot

type settings struct {
	path     string
	inMemory bool
}

// Option applies a configuration option to the badger store.
type Option func(*settings)

// WithPath sets the on-disk directory for the store.
func WithPath(path string) Option {
	return func(s *settings) {
		if path != "" {
			s.path = path
		}
	}
}

// WithInMemory keeps the store purely in memory. Used by tests and by
// deployments that accept losing the board across restarts.
func WithInMemory(inMemory bool) Option {
	return func(s *settings) {
		s.inMemory = inMemory
	}
}
