package testutil

import (
	"sync"

	"whisper-batch/internal/app/model"
)

// MockTranscriptionDAO is an in-memory repository.TranscriptionDAO.
type MockTranscriptionDAO struct {
	mu sync.Mutex

	records     []model.Transcription
	recordErr   error
	closeErr    error
	closeCalled bool
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{}
}

func (m *MockTranscriptionDAO) WithRecordError(err error) *MockTranscriptionDAO {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordErr = err
	return m
}

func (m *MockTranscriptionDAO) WithCloseError(err error) *MockTranscriptionDAO {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeErr = err
	return m
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeCalled = true
	return m.closeErr
}

func (m *MockTranscriptionDAO) Record(t *model.Transcription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return m.recordErr
	}
	m.records = append(m.records, *t)
	return nil
}

func (m *MockTranscriptionDAO) GetAll() ([]model.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Transcription(nil), m.records...), nil
}

func (m *MockTranscriptionDAO) WasCloseCalled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalled
}

// Records returns a copy of everything recorded so far.
func (m *MockTranscriptionDAO) Records() []model.Transcription {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Transcription(nil), m.records...)
}
