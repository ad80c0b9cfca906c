package model

import "time"

// BatchItem pairs one discovered audio file with its per-file output
// directory (<out-root>/<basename-without-extension>).
type BatchItem struct {
	FullPath  string
	Name      string
	OutputDir string
}

// Transcription is one recorded per-file outcome in the run history.
type Transcription struct {
	ID            int
	RunID         string
	FileName      string
	FilePath      string
	OutputDir     string
	Language      string
	AudioDuration float64
	Transcription string
	CreatedAt     time.Time
	HasError      bool
	ErrorMessage  string
}
