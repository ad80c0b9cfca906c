package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("fake audio content"), 0o644))
	return path
}

func TestFindAudioFiles_Directory(t *testing.T) {
	tempDir := t.TempDir()

	writeFixture(t, tempDir, "b.mp3")
	writeFixture(t, tempDir, "a.WAV")
	writeFixture(t, tempDir, "notes.txt")
	writeFixture(t, tempDir, filepath.Join("nested", "deep", "c.flac"))
	writeFixture(t, tempDir, filepath.Join("nested", "readme.md"))

	found, err := FindAudioFiles(tempDir, AudioExtensions)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(tempDir, "a.WAV"),
		filepath.Join(tempDir, "b.mp3"),
		filepath.Join(tempDir, "nested", "deep", "c.flac"),
	}
	assert.Equal(t, expected, found)
}

func TestFindAudioFiles_SingleFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		fileName string
		expected int
	}{
		{name: "extension_in_allow_list", fileName: "episode.mp3", expected: 1},
		{name: "uppercase_extension", fileName: "EPISODE.MP3", expected: 1},
		{name: "extension_not_in_allow_list", fileName: "episode.aiff", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFixture(t, tempDir, tt.fileName)

			found, err := FindAudioFiles(path, AudioExtensions)
			require.NoError(t, err)
			assert.Len(t, found, tt.expected)
			if tt.expected == 1 {
				assert.Equal(t, path, found[0])
			}
		})
	}
}

func TestFindAudioFiles_EmptyDirectory(t *testing.T) {
	found, err := FindAudioFiles(t.TempDir(), AudioExtensions)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindAudioFiles_MissingRoot(t *testing.T) {
	_, err := FindAudioFiles(filepath.Join(t.TempDir(), "does-not-exist"), AudioExtensions)
	assert.Error(t, err)
}

func TestBaseWithoutExt(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/data/audio/episode.mp3", expected: "episode"},
		{path: "episode.tar.gz", expected: "episode.tar"},
		{path: "noext", expected: "noext"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BaseWithoutExt(tt.path))
	}
}

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "episode")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReadOutputFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  hello world \n"), 0o644))

	content, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}
