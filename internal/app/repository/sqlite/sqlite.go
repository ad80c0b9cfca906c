package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"whisper-batch/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	file_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	output_dir TEXT NOT NULL,
	language TEXT,
	audio_duration REAL,
	transcription TEXT,
	created_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and if needed initializes) the history database at
// dbFilePath.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbFilePath, err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create transcriptions table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

// NewWithDB wraps an existing connection; the schema must already exist.
func NewWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(t *model.Transcription) error {
	insertSQL := `INSERT INTO transcriptions
		(run_id, file_name, file_path, output_dir, language, audio_duration, transcription, created_at, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	hasError := 0
	if t.HasError {
		hasError = 1
	}

	_, err := sdb.db.Exec(insertSQL,
		t.RunID, t.FileName, t.FilePath, t.OutputDir, t.Language,
		t.AudioDuration, t.Transcription, t.CreatedAt, hasError, t.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert transcription record: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAll() ([]model.Transcription, error) {
	query := `
		SELECT id, run_id, file_name, file_path, output_dir, language, audio_duration, transcription, created_at, has_error, error_message
		FROM transcriptions
		ORDER BY created_at DESC;`

	rows, err := sdb.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)
	for rows.Next() {
		var t model.Transcription
		var hasError int
		err = rows.Scan(&t.ID, &t.RunID, &t.FileName, &t.FilePath, &t.OutputDir,
			&t.Language, &t.AudioDuration, &t.Transcription, &t.CreatedAt, &hasError, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		t.HasError = hasError != 0
		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}
