package domain

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNoteRepository is a testify mock of NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

var _ NoteRepository = (*MockNoteRepository)(nil)

// NewMockNoteRepository returns a mock that fails the test on unexpected calls.
func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{}
}

func (m *MockNoteRepository) List(ctx context.Context, ownerID string) ([]Note, error) {
	args := m.Called(ctx, ownerID)
	notes, _ := args.Get(0).([]Note)
	return notes, args.Error(1)
}

func (m *MockNoteRepository) Create(ctx context.Context, ownerID string, fields NoteFields) (Note, error) {
	args := m.Called(ctx, ownerID, fields)
	note, _ := args.Get(0).(Note)
	return note, args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, ownerID, id string, fields NoteFields) (Note, error) {
	args := m.Called(ctx, ownerID, id, fields)
	note, _ := args.Get(0).(Note)
	return note, args.Error(1)
}

func (m *MockNoteRepository) Delete(ctx context.Context, ownerID, id string) (Note, error) {
	args := m.Called(ctx, ownerID, id)
	note, _ := args.Get(0).(Note)
	return note, args.Error(1)
}

func (m *MockNoteRepository) SetArchived(ctx context.Context, ownerID, id string, archived bool) (Note, error) {
	args := m.Called(ctx, ownerID, id, archived)
	note, _ := args.Get(0).(Note)
	return note, args.Error(1)
}
