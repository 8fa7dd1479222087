package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, originalName string, r io.Reader, size int64) (string, error) {
	args := m.Called(ctx, originalName, r, size)
	return args.String(0), args.Error(1)
}
