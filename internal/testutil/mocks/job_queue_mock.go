package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/athlyze/athlyze/internal/worker"
)

// MockJobQueue is a mock implementation of services.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) TrySubmit(job worker.Job) bool {
	args := m.Called(job)
	return args.Bool(0)
}
