package openai

import (
	"context"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"whisper-batch/internal/app/api"
	"whisper-batch/internal/app/model"
)

// RemoteTranscriber transcribes through the OpenAI audio API. Device and
// precision policy do not apply here; the service decides both.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

func NewRemoteTranscriber(client *openai.Client, modelID string) *RemoteTranscriber {
	if modelID == "" {
		modelID = string(openai.Whisper1)
	}
	return &RemoteTranscriber{client: client, model: modelID}
}

func (rt *RemoteTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*model.TranscriptionResult, error) {
	if _, err := os.Stat(req.InputFilePath); err != nil {
		return nil, fmt.Errorf("input file %s: %w", req.InputFilePath, err)
	}

	audioRequest := openai.AudioRequest{
		Model:    rt.model,
		FilePath: req.InputFilePath,
		Language: req.Language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	start := time.Now()
	resp, err := rt.client.CreateTranscription(ctx, audioRequest)
	if err != nil {
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	result := &model.TranscriptionResult{
		Text:      resp.Text,
		Language:  resp.Language,
		Duration:  resp.Duration,
		ModelUsed: rt.model,
		Elapsed:   time.Since(start),
		Segments:  make([]model.Segment, 0, len(resp.Segments)),
	}
	for _, seg := range resp.Segments {
		result.Segments = append(result.Segments, model.Segment{
			ID:    seg.ID,
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return result, nil
}

func init() {
	api.Register("openai", createProvider)
}

func createProvider(settings map[string]interface{}, deps api.Dependencies) (api.Transcriber, error) {
	apiKey, _ := settings["api_key"].(string)
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("openai provider requires 'api_key' setting or OPENAI_API_KEY")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL, ok := settings["base_url"].(string); ok && baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	modelID, _ := settings["model"].(string)
	return NewRemoteTranscriber(openai.NewClientWithConfig(clientConfig), modelID), nil
}
