package render

import (
	"strings"

	"github.com/gridmill/tessella/model"
)

// CSV converts the structure to CSV. Like Markdown, merged cells repeat
// their content at every grid position they cover.
func CSV(st *model.Structure) string {
	var sb strings.Builder
	for i := 0; i < st.Rows(); i++ {
		for j := 0; j < st.Cols(); j++ {
			var text string
			if cell := st.CellAt(i, j); cell != nil {
				text = cell.Content
			}
			// Escape quotes and wrap in quotes if necessary
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < st.Cols()-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
