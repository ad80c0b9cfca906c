package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"whisper-batch/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id SERIAL PRIMARY KEY,
	run_id TEXT NOT NULL,
	file_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	output_dir TEXT NOT NULL,
	language TEXT,
	audio_duration DOUBLE PRECISION,
	transcription TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	has_error BOOLEAN NOT NULL DEFAULT FALSE,
	error_message TEXT
);`

// PostgresDB is the postgres-backed history repository, selected with
// WHISPER_DB=postgres.
type PostgresDB struct {
	db *sql.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create transcriptions table: %w", err)
	}
	return &PostgresDB{db: db}, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Record(t *model.Transcription) error {
	insertSQL := `INSERT INTO transcriptions
		(run_id, file_name, file_path, output_dir, language, audio_duration, transcription, created_at, has_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := pdb.db.Exec(insertSQL,
		t.RunID, t.FileName, t.FilePath, t.OutputDir, t.Language,
		t.AudioDuration, t.Transcription, t.CreatedAt, t.HasError, t.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert transcription record: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetAll() ([]model.Transcription, error) {
	query := `
		SELECT id, run_id, file_name, file_path, output_dir, language, audio_duration, transcription, created_at, has_error, error_message
		FROM transcriptions
		ORDER BY created_at DESC;`

	rows, err := pdb.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.RunID, &t.FileName, &t.FilePath, &t.OutputDir,
			&t.Language, &t.AudioDuration, &t.Transcription, &t.CreatedAt, &t.HasError, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}
