package writer

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Format is one of the supported transcript output formats.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
	FormatSRT  Format = "srt"
	FormatVTT  Format = "vtt"
)

// AllFormats lists every supported format in rendering order.
var AllFormats = []Format{FormatTXT, FormatJSON, FormatSRT, FormatVTT}

// ParseFormats parses a comma-separated format list. Any unrecognized name
// makes the whole list invalid; the caller must reject the run before any
// file is processed. Duplicates collapse, order is preserved.
func ParseFormats(raw string) ([]Format, error) {
	parts := strings.Split(raw, ",")

	var formats []Format
	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		format := Format(name)
		if !lo.Contains(AllFormats, format) {
			return nil, fmt.Errorf("unsupported format %q (supported: %s)", name, supportedNames())
		}
		formats = append(formats, format)
	}

	return lo.Uniq(formats), nil
}

func supportedNames() string {
	names := lo.Map(AllFormats, func(f Format, _ int) string { return string(f) })
	return strings.Join(names, ",")
}
