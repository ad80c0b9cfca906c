package testutil

import (
	"context"
	"sync"

	"whisper-batch/internal/app/api"
	"whisper-batch/internal/app/model"
)

// MockTranscriber is a configurable api.Transcriber for tests. Responses
// and errors can be pinned per input path; everything else gets the default
// result.
type MockTranscriber struct {
	mu sync.Mutex

	defaultResult *model.TranscriptionResult
	errorMap      map[string]error

	callCount int
	calls     []string
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		defaultResult: &model.TranscriptionResult{
			Text:     "This is a mock transcription result.",
			Language: "en",
			Segments: []model.Segment{
				{ID: 0, Start: 0, End: 2.5, Text: "This is a mock"},
				{ID: 1, Start: 2.5, End: 5, Text: "transcription result."},
			},
			Duration: 5,
		},
		errorMap: make(map[string]error),
	}
}

// WithDefaultResult sets the result returned for paths without a pinned
// error.
func (m *MockTranscriber) WithDefaultResult(result *model.TranscriptionResult) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultResult = result
	return m
}

// WithError makes transcription of the given path fail.
func (m *MockTranscriber) WithError(inputFilePath string, err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorMap[inputFilePath] = err
	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*model.TranscriptionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++
	m.calls = append(m.calls, req.InputFilePath)

	if err, ok := m.errorMap[req.InputFilePath]; ok {
		return nil, err
	}
	return m.defaultResult, nil
}

func (m *MockTranscriber) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func (m *MockTranscriber) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
