package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"whisper-batch/internal/app/model"
	"whisper-batch/internal/app/util/files"
)

// Writer renders one TranscriptionResult into the requested formats inside
// a per-file output directory.
type Writer struct {
	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Writer {
	return &Writer{log: log}
}

// WriteAll writes one file per requested format under destDir, creating the
// directory first. A failure in one format is logged and does not stop the
// remaining formats; it also never reclassifies the file itself as failed.
// The returned error is only non-nil when the destination directory cannot
// be created, which blocks every format.
func (w *Writer) WriteAll(result *model.TranscriptionResult, audioPath, destDir string, formats []Format) error {
	if err := files.EnsureDir(destDir); err != nil {
		return err
	}

	base := files.BaseWithoutExt(audioPath)
	for _, format := range formats {
		outPath := filepath.Join(destDir, base+"."+string(format))
		if err := w.writeOne(result, outPath, format); err != nil {
			w.log.Errorf("failed %s writing for %s: %v", format, audioPath, err)
		}
	}
	return nil
}

func (w *Writer) writeOne(result *model.TranscriptionResult, outPath string, format Format) error {
	var (
		content []byte
		err     error
	)

	switch format {
	case FormatTXT:
		content = []byte(strings.TrimSpace(result.Text))
	case FormatJSON:
		content, err = renderJSON(result)
	case FormatSRT:
		content = renderSRT(result.Segments)
	case FormatVTT:
		content = renderVTT(result.Segments)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(outPath, content, 0o644)
}

// renderJSON keeps struct field order and passes non-ASCII text through as
// UTF-8 instead of escaping it.
func renderJSON(result *model.TranscriptionResult) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSRT(segments []model.Segment) []byte {
	var buf bytes.Buffer
	for i, seg := range segments {
		fmt.Fprintf(&buf, "%d\n", i+1)
		fmt.Fprintf(&buf, "%s --> %s\n", formatTimestamp(seg.Start, ","), formatTimestamp(seg.End, ","))
		fmt.Fprintf(&buf, "%s\n\n", strings.TrimSpace(seg.Text))
	}
	return buf.Bytes()
}

func renderVTT(segments []model.Segment) []byte {
	var buf bytes.Buffer
	buf.WriteString("WEBVTT\n\n")
	for _, seg := range segments {
		fmt.Fprintf(&buf, "%s --> %s\n", formatTimestamp(seg.Start, "."), formatTimestamp(seg.End, "."))
		fmt.Fprintf(&buf, "%s\n\n", strings.TrimSpace(seg.Text))
	}
	return buf.Bytes()
}

// formatTimestamp renders seconds as HH:MM:SS<sep>mmm, the cue timestamp
// shape shared by SRT (comma) and WebVTT (dot).
func formatTimestamp(seconds float64, sep string) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int64(seconds*1000 + 0.5)

	hours := millis / 3_600_000
	millis -= hours * 3_600_000
	minutes := millis / 60_000
	millis -= minutes * 60_000
	secs := millis / 1000
	millis -= secs * 1000

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, secs, sep, millis)
}
