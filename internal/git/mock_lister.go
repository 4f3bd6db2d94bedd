package git

import "context"

// MockChangeLister is a test double for ChangeLister.
// It returns predefined paths without needing a real Git repository and
// records the refs it was asked about.
type MockChangeLister struct {
	Paths []string
	Error error

	Calls int
	Refs  [][2]string
}

// NewMockChangeLister creates a new MockChangeLister with the given data.
func NewMockChangeLister(paths []string, err error) *MockChangeLister {
	return &MockChangeLister{
		Paths: paths,
		Error: err,
	}
}

// ListChanges returns the predefined paths or error.
func (m *MockChangeLister) ListChanges(_ context.Context, before, after string) ([]string, error) {
	m.Calls++
	m.Refs = append(m.Refs, [2]string{before, after})
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Paths, nil
}

// Compile-time interface conformance check.
var _ ChangeLister = (*MockChangeLister)(nil)
