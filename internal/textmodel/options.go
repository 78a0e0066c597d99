package textmodel

import "github.com/google/uuid"

// Option configures a Model.
type Option func(*Model)

// WithTabSize sets the tab size used for indent guides.
func WithTabSize(size int) Option {
	return func(m *Model) {
		if size > 0 {
			m.tabSize = size
		}
	}
}

// WithIDGenerator replaces the decoration id generator.
func WithIDGenerator(next func() string) Option {
	return func(m *Model) {
		if next != nil {
			m.newID = next
		}
	}
}

func defaultID() string {
	return uuid.NewString()
}
