package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"whisper-batch/internal/app/api"
	"whisper-batch/internal/app/hardware"
	"whisper-batch/internal/app/model"
)

// LocalTranscriber runs the whisper.cpp CLI and parses its JSON output.
type LocalTranscriber struct {
	binaryPath string
	modelDir   string
	tempDir    string
	probe      hardware.Probe
	log        *zap.SugaredLogger
}

// NewLocalTranscriber creates a whisper.cpp backed transcriber. binaryPath
// is the compiled whisper.cpp executable, modelDir the directory holding
// ggml-<model>.bin files.
func NewLocalTranscriber(binaryPath, modelDir string, probe hardware.Probe, log *zap.SugaredLogger) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelDir:   modelDir,
		tempDir:    os.TempDir(),
		probe:      probe,
		log:        log,
	}
}

// whisperCppOutput mirrors the JSON document written by whisper.cpp -oj.
type whisperCppOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (lt *LocalTranscriber) Transcribe(ctx context.Context, req *api.TranscriptionRequest) (*model.TranscriptionResult, error) {
	modelPath := filepath.Join(lt.modelDir, fmt.Sprintf("ggml-%s.bin", req.Model))
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("whisper.cpp model %s: %w", modelPath, err)
	}

	// Device preference is resolved on every invocation; nothing is cached
	// across files.
	device := hardware.Resolve(req.Device, lt.probe)

	outBase := filepath.Join(lt.tempDir, fmt.Sprintf("whisper-%d", time.Now().UnixNano()))
	defer os.Remove(outBase + ".json")

	language := req.Language
	if language == "" {
		language = "auto"
	}

	args := []string{
		"-m", modelPath,
		"-l", language,
		"-oj",
		"-of", outBase,
		"-f", req.InputFilePath,
	}
	if device == hardware.DeviceCPU {
		args = append(args, "-ng")
	} else if hardware.UseReducedPrecision(device) {
		args = append(args, "-fa")
	}

	lt.log.Debugw("running whisper.cpp",
		"binary", lt.binaryPath, "device", device, "args", strings.Join(args, " "))

	command := exec.CommandContext(ctx, lt.binaryPath, args...)
	var stderr bytes.Buffer
	command.Stderr = &stderr

	start := time.Now()
	if err := command.Run(); err != nil {
		return nil, fmt.Errorf("whisper.cpp execution: %v, stderr: %s", err, stderr.String())
	}

	result, err := parseOutputFile(outBase + ".json")
	if err != nil {
		return nil, err
	}

	result.ModelUsed = req.Model
	result.Elapsed = time.Since(start)
	return result, nil
}

func parseOutputFile(path string) (*model.TranscriptionResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read whisper.cpp output: %w", err)
	}

	var out whisperCppOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse whisper.cpp output: %w", err)
	}

	result := &model.TranscriptionResult{
		Language: out.Result.Language,
		Segments: make([]model.Segment, 0, len(out.Transcription)),
	}

	var text strings.Builder
	for i, seg := range out.Transcription {
		result.Segments = append(result.Segments, model.Segment{
			ID:    i,
			Start: float64(seg.Offsets.From) / 1000.0,
			End:   float64(seg.Offsets.To) / 1000.0,
			Text:  strings.TrimSpace(seg.Text),
		})
		text.WriteString(seg.Text)
	}
	result.Text = strings.TrimSpace(text.String())

	if len(result.Segments) > 0 {
		result.Duration = result.Segments[len(result.Segments)-1].End
	}
	return result, nil
}
