package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/athlyze/athlyze/internal/pose"
)

// MockPoseSource is a mock implementation of posesource.Source
type MockPoseSource struct {
	mock.Mock
}

func (m *MockPoseSource) Fetch(ctx context.Context, url string) (pose.Sequence, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return pose.Sequence{}, args.Error(1)
	}
	return args.Get(0).(pose.Sequence), args.Error(1)
}
