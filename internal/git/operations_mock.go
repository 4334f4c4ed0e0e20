package git

// MockGitOps is a mock implementation of Operations for testing.
type MockGitOps struct {
	Changed      []string
	ChangedError error

	// Refs records the refs passed to ChangedFiles.
	Refs []string
}

// NewMockGitOps creates a mock that reports no changes.
func NewMockGitOps() *MockGitOps {
	return &MockGitOps{}
}

func (m *MockGitOps) ChangedFiles(projectPath, ref string) ([]string, error) {
	m.Refs = append(m.Refs, ref)
	if m.ChangedError != nil {
		return nil, m.ChangedError
	}
	return m.Changed, nil
}
