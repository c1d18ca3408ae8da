package mocks

import "github.com/stretchr/testify/mock"

type TextExtractor struct {
	mock.Mock
}

func (m *TextExtractor) ExtractText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}
