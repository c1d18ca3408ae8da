package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
	ProviderName string
}

func (m *Storage) Save(ctx context.Context, src io.Reader, ext, contentType string) (string, error) {
	args := m.Called(ctx, src, ext, contentType)
	return args.String(0), args.Error(1)
}

func (m *Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	var rc io.ReadCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	return rc, args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *Storage) Provider() string {
	if m.ProviderName == "" {
		return "local"
	}
	return m.ProviderName
}
