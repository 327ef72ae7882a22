package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gridmill/tessella/model"
)

// HTML renders the structure as an HTML table. Merged cells are emitted once,
// at their top-left grid position, carrying rowspan/colspan attributes; the
// positions they cover are skipped. Text content is escaped by the renderer.
func HTML(st *model.Structure) (string, error) {
	table := element(atom.Table, "table")
	tbody := element(atom.Tbody, "tbody")
	table.AppendChild(tbody)

	for row := 0; row < st.Rows(); row++ {
		tr := element(atom.Tr, "tr")
		for col := 0; col < st.Cols(); col++ {
			cell := st.CellAt(row, col)
			if cell == nil {
				continue
			}
			if cell.Grid.Row != row || cell.Grid.Col != col {
				// Covered by a merged cell emitted earlier.
				continue
			}
			td := element(atom.Td, "td")
			if span := cell.Grid.RowSpan(); span > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(span)})
			}
			if span := cell.Grid.ColSpan(); span > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(span)})
			}
			td.AppendChild(&html.Node{Type: html.TextNode, Data: cell.Content})
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}

	var sb strings.Builder
	if err := html.Render(&sb, table); err != nil {
		return "", fmt.Errorf("rendering table: %w", err)
	}
	return sb.String(), nil
}

func element(a atom.Atom, name string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: name}
}
