package render

import (
	"strings"

	"github.com/gridmill/tessella/model"
)

// Markdown converts the structure to a markdown table. The first grid row
// becomes the header row. Markdown has no cell spanning, so a merged cell's
// content is repeated at every grid position it covers.
func Markdown(st *model.Structure) string {
	if st.Rows() == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	writeMarkdownRow(&sb, st, 0)

	// Separator
	for j := 0; j < st.Cols(); j++ {
		sb.WriteString("|---")
		if j == st.Cols()-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for i := 1; i < st.Rows(); i++ {
		writeMarkdownRow(&sb, st, i)
	}

	return sb.String()
}

func writeMarkdownRow(sb *strings.Builder, st *model.Structure, row int) {
	for j := 0; j < st.Cols(); j++ {
		sb.WriteString("| ")
		if cell := st.CellAt(row, j); cell != nil {
			sb.WriteString(strings.ReplaceAll(cell.Content, "\n", " "))
		}
		sb.WriteString(" ")
		if j == st.Cols()-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")
}
