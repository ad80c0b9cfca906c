package whisper_cpp

import (
	"fmt"
	"os"

	"whisper-batch/internal/app/api"
)

func init() {
	api.Register("whisper_cpp", createProvider)
}

func createProvider(settings map[string]interface{}, deps api.Dependencies) (api.Transcriber, error) {
	binaryPath, _ := settings["binary_path"].(string)
	if binaryPath == "" {
		binaryPath = os.Getenv("WHISPER_CPP_BINARY")
	}
	if binaryPath == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'binary_path' setting or WHISPER_CPP_BINARY")
	}

	modelDir, _ := settings["model_dir"].(string)
	if modelDir == "" {
		modelDir = os.Getenv("WHISPER_CPP_MODEL_DIR")
	}
	if modelDir == "" {
		return nil, fmt.Errorf("whisper_cpp provider requires 'model_dir' setting or WHISPER_CPP_MODEL_DIR")
	}

	lt := NewLocalTranscriber(binaryPath, modelDir, deps.Probe, deps.Logger)
	if tempDir, ok := settings["temp_dir"].(string); ok && tempDir != "" {
		lt.tempDir = tempDir
	}
	return lt, nil
}
