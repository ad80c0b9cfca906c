package model

import "time"

// Segment is a time-bounded span of transcript text, in seconds from the
// start of the audio.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the structured output of a single transcription.
// It is produced once per audio file and never mutated afterwards.
type TranscriptionResult struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	Language string    `json:"language,omitempty"`

	// Auxiliary metadata attached by the backend.
	Duration  float64       `json:"duration,omitempty"`
	ModelUsed string        `json:"model_used,omitempty"`
	Elapsed   time.Duration `json:"-"`
}
