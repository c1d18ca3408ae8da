package mocks

import (
	"context"

	"github.com/fadilmartias/resume-matcher/internal/service"
	"github.com/stretchr/testify/mock"
)

type Completer struct {
	mock.Mock
	ProviderName string
}

func (m *Completer) Name() string {
	if m.ProviderName == "" {
		return "Groq"
	}
	return m.ProviderName
}

func (m *Completer) Complete(ctx context.Context, req service.CompletionRequest) (*service.Completion, error) {
	args := m.Called(ctx, req)
	var c *service.Completion
	if v := args.Get(0); v != nil {
		c = v.(*service.Completion)
	}
	return c, args.Error(1)
}
