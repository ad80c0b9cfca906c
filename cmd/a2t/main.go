package main

import (
	"fmt"
	"os"

	"whisper-batch/cmd/a2t/cmd"
	"whisper-batch/internal/config"

	// Import providers to register them
	_ "whisper-batch/internal/app/api/openai"
	_ "whisper-batch/internal/app/api/whisper_cpp"
	_ "whisper-batch/internal/app/api/whisper_server"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
