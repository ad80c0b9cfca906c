package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"whisper-batch/internal/app/model"
)

// ToExcel writes the recorded run history to an xlsx workbook.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Run"
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Output Directory"
	headerRow.AddCell().Value = "Language"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Recorded At"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Error Message"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.RunID
		row.AddCell().Value = t.FileName
		row.AddCell().Value = t.OutputDir
		row.AddCell().Value = t.Language
		row.AddCell().Value = fmt.Sprintf("%.2f", t.AudioDuration)
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.Transcription
		row.AddCell().Value = t.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}
