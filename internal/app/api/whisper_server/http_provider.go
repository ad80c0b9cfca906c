package whisper_server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"whisper-batch/internal/app/api"
	"whisper-batch/internal/app/model"
)

// ServerConfig configures the whisper-server HTTP backend.
type ServerConfig struct {
	BaseURL       string
	InferencePath string
	Timeout       time.Duration
}

// ServerTranscriber talks to a running whisper-server instance over HTTP.
// The server owns device selection and precision, so request-level device
// preferences are not forwarded.
type ServerTranscriber struct {
	config ServerConfig
	client *http.Client
}

type serverResponse struct {
	Text     string  `json:"text,omitempty"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Segments []struct {
		ID    int     `json:"id"`
		Text  string  `json:"text"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	} `json:"segments,omitempty"`
	Error string `json:"error,omitempty"`
}

func NewServerTranscriber(config ServerConfig) *ServerTranscriber {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Minute
	}
	return &ServerTranscriber{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

func (st *ServerTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*model.TranscriptionResult, error) {
	file, err := os.Open(req.InputFilePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", req.InputFilePath, err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(req.InputFilePath))
	if err != nil {
		return nil, fmt.Errorf("build multipart request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read %s: %w", req.InputFilePath, err)
	}

	fields := map[string]string{"response_format": "verbose_json"}
	if req.Language != "" {
		fields["language"] = req.Language
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("build multipart request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build multipart request: %w", err)
	}

	url := strings.TrimSuffix(st.config.BaseURL, "/") + st.config.InferencePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := st.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("whisper-server request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read whisper-server response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whisper-server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var sr serverResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return nil, fmt.Errorf("parse whisper-server response: %w", err)
	}
	if sr.Error != "" {
		return nil, fmt.Errorf("whisper-server error: %s", sr.Error)
	}

	result := &model.TranscriptionResult{
		Text:      strings.TrimSpace(sr.Text),
		Language:  sr.Language,
		Duration:  sr.Duration,
		ModelUsed: req.Model,
		Elapsed:   time.Since(start),
		Segments:  make([]model.Segment, 0, len(sr.Segments)),
	}
	for _, seg := range sr.Segments {
		result.Segments = append(result.Segments, model.Segment{
			ID:    seg.ID,
			Start: seg.Start,
			End:   seg.End,
			Text:  strings.TrimSpace(seg.Text),
		})
	}
	return result, nil
}

func init() {
	api.Register("whisper_server", createProvider)
}

func createProvider(settings map[string]interface{}, deps api.Dependencies) (api.Transcriber, error) {
	baseURL, _ := settings["base_url"].(string)
	if baseURL == "" {
		baseURL = os.Getenv("WHISPER_SERVER_URL")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("whisper_server provider requires 'base_url' setting or WHISPER_SERVER_URL")
	}

	config := ServerConfig{BaseURL: baseURL}
	if path, ok := settings["inference_path"].(string); ok {
		config.InferencePath = path
	}
	if timeoutSec, ok := settings["timeout_sec"].(int); ok && timeoutSec > 0 {
		config.Timeout = time.Duration(timeoutSec) * time.Second
	}
	return NewServerTranscriber(config), nil
}
