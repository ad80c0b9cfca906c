package whisper_server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper-batch/internal/app/api"
	"whisper-batch/internal/app/hardware"
)

func newAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episode.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake wav"), 0o644))
	return path
}

func TestServerTranscriber_Transcribe(t *testing.T) {
	var gotLanguage, gotFormat string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotLanguage = r.FormValue("language")
		gotFormat = r.FormValue("response_format")

		_, _, err := r.FormFile("file")
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"text": " hello from the server ",
			"language": "en",
			"duration": 7.5,
			"segments": [
				{"id": 0, "text": " hello", "start": 0, "end": 3.2},
				{"id": 1, "text": " from the server", "start": 3.2, "end": 7.5}
			]
		}`))
	}))
	defer server.Close()

	st := NewServerTranscriber(ServerConfig{BaseURL: server.URL})
	result, err := st.Transcribe(context.Background(), &api.TranscriptionRequest{
		InputFilePath: newAudioFixture(t),
		Model:         "medium",
		Device:        hardware.DeviceAuto,
		Language:      "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "verbose_json", gotFormat)
	assert.Equal(t, "en", gotLanguage)
	assert.Equal(t, "hello from the server", result.Text)
	assert.Equal(t, "en", result.Language)
	assert.Equal(t, 7.5, result.Duration)
	require.Len(t, result.Segments, 2)
	assert.Equal(t, "from the server", result.Segments[1].Text)
}

func TestServerTranscriber_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	st := NewServerTranscriber(ServerConfig{BaseURL: server.URL})
	_, err := st.Transcribe(context.Background(), &api.TranscriptionRequest{
		InputFilePath: newAudioFixture(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestServerTranscriber_MissingInputFile(t *testing.T) {
	st := NewServerTranscriber(ServerConfig{BaseURL: "http://localhost:1"})
	_, err := st.Transcribe(context.Background(), &api.TranscriptionRequest{
		InputFilePath: filepath.Join(t.TempDir(), "absent.mp3"),
	})
	assert.Error(t, err)
}

func TestCreateProvider_RequiresBaseURL(t *testing.T) {
	t.Setenv("WHISPER_SERVER_URL", "")

	_, err := createProvider(map[string]interface{}{}, api.Dependencies{})
	assert.ErrorContains(t, err, "base_url")
}
