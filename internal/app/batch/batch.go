package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"whisper-batch/internal/app/api"
	"whisper-batch/internal/app/hardware"
	"whisper-batch/internal/app/model"
	"whisper-batch/internal/app/repository"
	"whisper-batch/internal/app/util/files"
	"whisper-batch/internal/app/writer"
)

// Options configure one batch run.
type Options struct {
	Input      string `validate:"required"`
	OutputRoot string `validate:"required"`
	Model      string `validate:"required"`
	Device     string `validate:"oneof=auto cpu gpu"`
	Language   string
	Formats    []writer.Format `validate:"min=1"`
	FailFast   bool

	// Extensions overrides the audio allow-list; empty means the default.
	Extensions []string

	ShowProgress bool
}

var validate = validator.New()

// Validate rejects malformed options before any file is touched.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid batch options: %w", err)
	}
	return nil
}

// FileFailure is one failed file with its reason.
type FileFailure struct {
	Path string
	Err  error
}

// Summary aggregates the outcome of a run.
type Summary struct {
	RunID      string
	Discovered int
	Processed  int
	Failures   []FileFailure
	Aborted    bool
}

// ExitCode maps the summary onto the process exit status: non-zero only
// when fail-fast was on and at least one file failed.
func (s *Summary) ExitCode(failFast bool) int {
	if failFast && len(s.Failures) > 0 {
		return 1
	}
	return 0
}

// Archiver uploads a completed per-file output directory to remote storage.
type Archiver interface {
	UploadDir(ctx context.Context, localDir, prefix string) error
}

// Runner drives a batch: discovery, sequential transcription, multi-format
// writing, history recording. Strictly one file at a time; the only shared
// state across files is the failure list and the fail-fast flag.
type Runner struct {
	transcriber api.Transcriber
	writer      *writer.Writer
	db          repository.TranscriptionDAO
	archiver    Archiver
	log         *zap.SugaredLogger
}

func NewRunner(transcriber api.Transcriber, w *writer.Writer, db repository.TranscriptionDAO, log *zap.SugaredLogger) *Runner {
	return &Runner{
		transcriber: transcriber,
		writer:      w,
		db:          db,
		log:         log,
	}
}

// WithArchiver enables transcript archive upload after each successful file.
func (r *Runner) WithArchiver(a Archiver) *Runner {
	r.archiver = a
	return r
}

func (r *Runner) Close() error {
	return r.db.Close()
}

// Run processes every discovered file. Transcription failures are isolated
// per file unless fail-fast is on; format write failures never fail a file.
// The returned error covers only run-level problems (bad options,
// unreadable input root), never per-file ones.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = files.AudioExtensions
	}

	discovered, err := files.FindAudioFiles(opts.Input, exts)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:      uuid.NewString(),
		Discovered: len(discovered),
	}
	if len(discovered) == 0 {
		r.log.Info("no audio files found to transcribe")
		return summary, nil
	}

	r.log.Infof("transcribing %d files (run %s)", len(discovered), summary.RunID)

	progress := NewProgressManager(ProgressConfig{Enabled: opts.ShowProgress})
	bar := progress.CreateBar(len(discovered), "Transcribing")
	defer progress.Wait()

	for _, path := range discovered {
		item := model.BatchItem{
			FullPath:  path,
			Name:      filepath.Base(path),
			OutputDir: filepath.Join(opts.OutputRoot, files.BaseWithoutExt(path)),
		}

		err := r.processFile(ctx, opts, summary.RunID, item)
		bar.Increment()

		if err != nil {
			summary.Failures = append(summary.Failures, FileFailure{Path: path, Err: err})
			r.log.Errorf("failed transcription for %s: %v", path, err)
			if opts.FailFast {
				summary.Aborted = true
				bar.Complete()
				return summary, nil
			}
			continue
		}
		summary.Processed++
	}

	return summary, nil
}

func (r *Runner) processFile(ctx context.Context, opts Options, runID string, item model.BatchItem) error {
	if err := files.EnsureDir(item.OutputDir); err != nil {
		return err
	}

	r.log.Infof("transcribing: %s", item.FullPath)

	result, err := r.transcriber.Transcribe(ctx, &api.TranscriptionRequest{
		InputFilePath: item.FullPath,
		Model:         opts.Model,
		Device:        hardware.Device(opts.Device),
		Language:      opts.Language,
	})
	if err != nil {
		r.record(runID, item, nil, err)
		return fmt.Errorf("transcribe %s: %w", item.FullPath, err)
	}

	// Per-format failures are logged inside WriteAll and deliberately do
	// not change the file's success classification.
	if err := r.writer.WriteAll(result, item.FullPath, item.OutputDir, opts.Formats); err != nil {
		r.log.Errorf("failed writing outputs for %s: %v", item.FullPath, err)
	}

	r.record(runID, item, result, nil)
	r.archive(ctx, item)

	r.log.Infof("saved transcripts to: %s", item.OutputDir)
	return nil
}

func (r *Runner) record(runID string, item model.BatchItem, result *model.TranscriptionResult, cause error) {
	rec := &model.Transcription{
		RunID:     runID,
		FileName:  item.Name,
		FilePath:  item.FullPath,
		OutputDir: item.OutputDir,
		CreatedAt: time.Now(),
	}
	if cause != nil {
		rec.HasError = true
		rec.ErrorMessage = cause.Error()
	} else {
		rec.Language = result.Language
		rec.AudioDuration = result.Duration
		rec.Transcription = result.Text
	}

	if err := r.db.Record(rec); err != nil {
		r.log.Warnf("failed to record history for %s: %v", item.FullPath, err)
	}
}

func (r *Runner) archive(ctx context.Context, item model.BatchItem) {
	if r.archiver == nil {
		return
	}
	if err := r.archiver.UploadDir(ctx, item.OutputDir, files.BaseWithoutExt(item.Name)); err != nil {
		r.log.Warnf("failed to archive %s: %v", item.OutputDir, err)
	}
}
