package tessella

import "strings"

// Warning codes reported by terminal operations.
const (
	// WarnContentCount means OCR produced a different number of text values
	// than the structure has cells; the overlap was applied.
	WarnContentCount = "content-count-mismatch"
	// WarnNoSplit means the image could not be decomposed and the whole
	// image was kept as a single cell.
	WarnNoSplit = "no-split-found"
)

// Warning indicates a non-fatal issue encountered during recognition.
// Operations that return warnings still produce a usable result.
type Warning struct {
	Code    string
	Message string
}

// FormatWarnings renders warnings as a newline-separated string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "\n")
}
