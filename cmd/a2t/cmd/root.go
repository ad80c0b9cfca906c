package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"whisper-batch/cmd/a2t/cmd/export"
	"whisper-batch/cmd/a2t/cmd/transcribe"
	"whisper-batch/cmd/a2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "Batch transcribe audio files with a whisper backend",
	Long: `Batch transcribe audio files with a whisper backend.
- Scan a file or directory for audio files
- Transcribe each file with the configured backend (whisper.cpp, whisper-server, openai)
- Save per-file transcripts in txt, json, srt and vtt formats
- Processed records are saved to sqlite for later export.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
