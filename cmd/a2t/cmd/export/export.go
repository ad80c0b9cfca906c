package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"whisper-batch/internal/app"
	appexport "whisper-batch/internal/app/export"
)

var outputFile string

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "transcriptions.xlsx",
		"Path of the xlsx file to write")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the recorded transcription history to an xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := app.InitializeDAO()
		if err != nil {
			return err
		}
		defer dao.Close()

		transcriptions, err := dao.GetAll()
		if err != nil {
			return err
		}
		if len(transcriptions) == 0 {
			fmt.Println("no transcription history to export")
			return nil
		}

		if err := appexport.ToExcel(transcriptions, outputFile); err != nil {
			return err
		}
		fmt.Printf("exported %d records to %s\n", len(transcriptions), outputFile)
		return nil
	},
}
