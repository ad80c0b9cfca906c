package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"whisper-batch/internal/app/model"
)

func sampleResult() *model.TranscriptionResult {
	return &model.TranscriptionResult{
		Text:     "  Bonjour à tous. Willkommen. ",
		Language: "fr",
		Duration: 9.25,
		Segments: []model.Segment{
			{ID: 0, Start: 0, End: 4.5, Text: "Bonjour à tous."},
			{ID: 1, Start: 4.5, End: 9.25, Text: "Willkommen."},
		},
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  []Format
		expectErr bool
	}{
		{name: "all_four", raw: "txt,json,srt,vtt", expected: []Format{FormatTXT, FormatJSON, FormatSRT, FormatVTT}},
		{name: "subset_with_spaces", raw: " txt , json ", expected: []Format{FormatTXT, FormatJSON}},
		{name: "uppercase_accepted", raw: "TXT,Srt", expected: []Format{FormatTXT, FormatSRT}},
		{name: "duplicates_collapse", raw: "txt,txt,json", expected: []Format{FormatTXT, FormatJSON}},
		{name: "trailing_comma", raw: "txt,", expected: []Format{FormatTXT}},
		{name: "unknown_name", raw: "txt,yaml", expectErr: true},
		{name: "single_unknown", raw: "docx", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formats, err := ParseFormats(tt.raw)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, formats)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds  float64
		sep      string
		expected string
	}{
		{0, ",", "00:00:00,000"},
		{4.5, ",", "00:00:04,500"},
		{59.999, ",", "00:00:59,999"},
		{61.25, ".", "00:01:01.250"},
		{3723.007, ".", "01:02:03.007"},
		{-1, ",", "00:00:00,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatTimestamp(tt.seconds, tt.sep))
	}
}

func TestWriteAll_TxtAndJSON(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "episode")
	w := New(zap.NewNop().Sugar())

	err := w.WriteAll(sampleResult(), "/audio/episode.mp3", destDir, []Format{FormatTXT, FormatJSON})
	require.NoError(t, err)

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	txt, err := os.ReadFile(filepath.Join(destDir, "episode.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Bonjour à tous. Willkommen.", string(txt))

	jsonContent, err := os.ReadFile(filepath.Join(destDir, "episode.json"))
	require.NoError(t, err)
	assert.Contains(t, string(jsonContent), `"Bonjour à tous."`)
	assert.Contains(t, string(jsonContent), `"language": "fr"`)
	// non-ASCII text passes through as UTF-8
	assert.NotContains(t, string(jsonContent), `\u`)
}

func TestWriteAll_SRT(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "episode")
	w := New(zap.NewNop().Sugar())

	require.NoError(t, w.WriteAll(sampleResult(), "/audio/episode.mp3", destDir, []Format{FormatSRT}))

	content, err := os.ReadFile(filepath.Join(destDir, "episode.srt"))
	require.NoError(t, err)

	expected := "1\n" +
		"00:00:00,000 --> 00:00:04,500\n" +
		"Bonjour à tous.\n\n" +
		"2\n" +
		"00:00:04,500 --> 00:00:09,250\n" +
		"Willkommen.\n\n"
	assert.Equal(t, expected, string(content))
}

func TestWriteAll_VTT(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "episode")
	w := New(zap.NewNop().Sugar())

	require.NoError(t, w.WriteAll(sampleResult(), "/audio/episode.mp3", destDir, []Format{FormatVTT}))

	content, err := os.ReadFile(filepath.Join(destDir, "episode.vtt"))
	require.NoError(t, err)

	expected := "WEBVTT\n\n" +
		"00:00:00.000 --> 00:00:04.500\n" +
		"Bonjour à tous.\n\n" +
		"00:00:04.500 --> 00:00:09.250\n" +
		"Willkommen.\n\n"
	assert.Equal(t, expected, string(content))
}

func TestWriteAll_FormatFailureDoesNotBlockSiblings(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "episode")
	require.NoError(t, os.MkdirAll(filepath.Join(destDir, "episode.srt"), 0o755))

	w := New(zap.NewNop().Sugar())
	err := w.WriteAll(sampleResult(), "/audio/episode.mp3", destDir, []Format{FormatSRT, FormatTXT, FormatVTT})
	require.NoError(t, err)

	// srt collided with a directory and failed, the rest were still written
	assert.FileExists(t, filepath.Join(destDir, "episode.txt"))
	assert.FileExists(t, filepath.Join(destDir, "episode.vtt"))
}

func TestWriteAll_CreatesDestDir(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "nested", "episode")
	w := New(zap.NewNop().Sugar())

	require.NoError(t, w.WriteAll(sampleResult(), "/audio/episode.mp3", destDir, []Format{FormatTXT}))
	assert.DirExists(t, destDir)
}
