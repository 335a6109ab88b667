package search

import (
	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	mock.Mock
}

var _ Provider = (*MockProvider)(nil)

// Match provides a mock function with given fields: note, query.
func (_m *MockProvider) Match(note domain.Note, query string) bool {
	ret := _m.Called(note, query)

	if rf, ok := ret.Get(0).(func(domain.Note, string) bool); ok {
		return rf(note, query)
	}
	return ret.Bool(0)
}

// Name provides a mock function with given fields: .
func (_m *MockProvider) Name() string {
	ret := _m.Called()

	if rf, ok := ret.Get(0).(func() string); ok {
		return rf()
	}
	return ret.String(0)
}
