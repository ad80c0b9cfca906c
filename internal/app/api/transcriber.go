package api

import (
	"context"

	"whisper-batch/internal/app/hardware"
	"whisper-batch/internal/app/model"
)

// TranscriptionRequest carries everything a backend needs for one file.
type TranscriptionRequest struct {
	// InputFilePath is the audio file to transcribe.
	InputFilePath string

	// Model is the backend-specific model identifier (tiny, base, small,
	// medium, large-v3, ...).
	Model string

	// Device is the caller's device preference. Local backends resolve
	// "auto" against their hardware probe on every invocation.
	Device hardware.Device

	// Language forces the transcription language when non-empty; empty
	// means auto-detect.
	Language string
}

// Transcriber converts one audio file into a structured transcription
// result. Implementations never retry; any backend error propagates to the
// caller unchanged apart from wrapping.
type Transcriber interface {
	Transcribe(ctx context.Context, req *TranscriptionRequest) (*model.TranscriptionResult, error)
}
