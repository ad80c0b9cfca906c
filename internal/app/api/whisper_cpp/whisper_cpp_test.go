package whisper_cpp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper-batch/internal/app/api"
)

const sampleOutput = `{
  "systeminfo": "AVX = 1 | AVX2 = 1",
  "model": {"type": "medium"},
  "result": {"language": "en"},
  "transcription": [
    {
      "timestamps": {"from": "00:00:00,000", "to": "00:00:04,500"},
      "offsets": {"from": 0, "to": 4500},
      "text": " Hello there."
    },
    {
      "timestamps": {"from": "00:00:04,500", "to": "00:00:09,250"},
      "offsets": {"from": 4500, "to": 9250},
      "text": " General Kenobi."
    }
  ]
}`

func TestParseOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleOutput), 0o644))

	result, err := parseOutputFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Hello there. General Kenobi.", result.Text)
	assert.Equal(t, "en", result.Language)
	require.Len(t, result.Segments, 2)

	assert.Equal(t, 0.0, result.Segments[0].Start)
	assert.Equal(t, 4.5, result.Segments[0].End)
	assert.Equal(t, "Hello there.", result.Segments[0].Text)

	assert.Equal(t, 4.5, result.Segments[1].Start)
	assert.Equal(t, 9.25, result.Segments[1].End)
	assert.Equal(t, 9.25, result.Duration)
}

func TestParseOutputFile_MissingFile(t *testing.T) {
	_, err := parseOutputFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseOutputFile_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := parseOutputFile(path)
	assert.Error(t, err)
}

func TestCreateProvider_RequiresPaths(t *testing.T) {
	t.Setenv("WHISPER_CPP_BINARY", "")
	t.Setenv("WHISPER_CPP_MODEL_DIR", "")

	_, err := createProvider(map[string]interface{}{}, api.Dependencies{})
	assert.ErrorContains(t, err, "binary_path")

	_, err = createProvider(map[string]interface{}{"binary_path": "/usr/local/bin/whisper"}, api.Dependencies{})
	assert.ErrorContains(t, err, "model_dir")
}
