package repository

import "whisper-batch/internal/app/model"

// TranscriptionDAO records per-file batch outcomes and serves the export
// command.
type TranscriptionDAO interface {
	Close() error

	// Record stores one per-file outcome, success or failure.
	Record(t *model.Transcription) error

	// GetAll returns every recorded outcome, newest first.
	GetAll() ([]model.Transcription, error)
}

// NoopDAO discards history. Used when persistence is disabled.
type NoopDAO struct{}

func (NoopDAO) Close() error                           { return nil }
func (NoopDAO) Record(*model.Transcription) error      { return nil }
func (NoopDAO) GetAll() ([]model.Transcription, error) { return nil, nil }
