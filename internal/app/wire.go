//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"whisper-batch/internal/app/batch"
	"whisper-batch/internal/app/repository"
)

// InitializeRunner assembles the batch runner with the configured backend
// and history store.
func InitializeRunner(log *zap.SugaredLogger) (*batch.Runner, error) {
	wire.Build(batch.NewRunner, provideTranscriber, provideWriter, provideTranscriptionDAO)
	return nil, nil
}

// InitializeDAO assembles just the history store, for the export command.
func InitializeDAO() (repository.TranscriptionDAO, error) {
	wire.Build(provideTranscriptionDAO)
	return nil, nil
}
