package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"whisper-batch/internal/app/api"
	"whisper-batch/internal/app/hardware"
	"whisper-batch/internal/app/repository"
	"whisper-batch/internal/app/repository/pg"
	"whisper-batch/internal/app/repository/sqlite"
	"whisper-batch/internal/app/util/files"
	"whisper-batch/internal/app/writer"
	"whisper-batch/internal/config"
)

func provideTranscriber(log *zap.SugaredLogger) (api.Transcriber, error) {
	cfg, err := config.LoadProvidersConfig("")
	if err != nil {
		return nil, err
	}

	name := config.Provider()
	if os.Getenv("WHISPER_PROVIDER") == "" && cfg.DefaultProvider != "" {
		name = cfg.DefaultProvider
	}

	deps := api.Dependencies{
		Probe:  hardware.NewSystemProbe(),
		Logger: log,
	}
	return api.New(name, cfg.SettingsFor(name), deps)
}

func provideWriter(log *zap.SugaredLogger) *writer.Writer {
	return writer.New(log)
}

func provideTranscriptionDAO() (repository.TranscriptionDAO, error) {
	switch backend := config.DBBackend(); backend {
	case "none":
		return repository.NoopDAO{}, nil
	case "postgres":
		dsn := config.PostgresDSN()
		if dsn == "" {
			return nil, fmt.Errorf("WHISPER_DB=postgres requires WHISPER_PG_DSN")
		}
		return pg.NewPostgresDB(dsn)
	case "sqlite":
		dbPath := config.DBPath()
		if err := files.EnsureDir(filepath.Dir(dbPath)); err != nil {
			return nil, err
		}
		return sqlite.NewSQLiteDB(dbPath)
	default:
		return nil, fmt.Errorf("unknown history backend %q (sqlite, postgres, none)", backend)
	}
}
