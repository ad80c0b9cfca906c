package transcribe

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whisper-batch/internal/app"
	"whisper-batch/internal/app/batch"
	"whisper-batch/internal/app/logger"
	"whisper-batch/internal/app/storage"
	"whisper-batch/internal/app/writer"
	"whisper-batch/internal/config"
)

var (
	input      string
	outDir     string
	modelName  string
	device     string
	language   string
	formatList string
	failFast   bool
)

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", ".",
		"Input file or directory to scan for audio files")
	Cmd.Flags().StringVarP(&outDir, "out-dir", "o", "transcripts",
		"Root output directory for transcripts")
	Cmd.Flags().StringVarP(&modelName, "model", "m", "medium",
		"Whisper model size/name (tiny, base, small, medium, large-v3)")
	Cmd.Flags().StringVar(&device, "device", "auto",
		"Device to use: auto, cpu, or gpu")
	Cmd.Flags().StringVar(&language, "language", "",
		"Force language code (e.g. en). Defaults to auto-detect")
	Cmd.Flags().StringVarP(&formatList, "formats", "f", "txt,json,srt,vtt",
		"Comma-separated output formats to save (txt,json,srt,vtt)")
	Cmd.Flags().BoolVar(&failFast, "fail-fast", false,
		"Abort the whole batch on the first file that fails to transcribe")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe the audio files under the input path and save outputs per file",
	Long: `Transcribe the audio files under the input path and save outputs per file.

- Scans the input recursively for known audio extensions
- Transcribes each file sequentially with the configured backend
- Writes <out-dir>/<basename>/<basename>.<format> for every requested format`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run(cmd))
	},
}

func run(cmd *cobra.Command) int {
	// An invalid format rejects the whole run before any file is touched.
	formats, err := writer.ParseFormats(formatList)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if len(formats) == 0 {
		fmt.Fprintln(os.Stderr, "no output formats requested")
		return 2
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := logger.MustNew(verbose)
	defer log.Sync()

	runner, err := app.InitializeRunner(log)
	if err != nil {
		log.Errorf("initialization failed: %v", err)
		return 1
	}
	defer runner.Close()

	ctx := context.Background()
	if minioCfg, ok := config.MinioFromEnv(); ok {
		uploader, err := storage.NewMinioUploader(ctx, minioCfg, log)
		if err != nil {
			log.Errorf("archive storage unavailable: %v", err)
			return 1
		}
		runner.WithArchiver(uploader)
	}

	summary, err := runner.Run(ctx, batch.Options{
		Input:        input,
		OutputRoot:   outDir,
		Model:        modelName,
		Device:       device,
		Language:     language,
		Formats:      formats,
		FailFast:     failFast,
		ShowProgress: batch.ShouldShowProgress() && !verbose,
	})
	if err != nil {
		log.Errorf("batch failed: %v", err)
		return 1
	}

	if len(summary.Failures) > 0 {
		log.Warnf("%d of %d files failed", len(summary.Failures), summary.Discovered)
	}
	return summary.ExitCode(failFast)
}
