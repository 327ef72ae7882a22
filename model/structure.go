package model

import "sort"

// Structure is the final, ordered collection of cells recognized in one table
// image. Bounding boxes and grid coordinates are fixed at construction; only
// cell content is mutated afterwards, via SetContent.
type Structure struct {
	cells  []*Cell
	layout [][]*Cell // [row][col] -> owning cell
	rows   int
	cols   int
}

// NewStructure builds a Structure from unified bounding boxes. Grid
// coordinates are derived per edge: every distinct value of an edge is ranked
// among the sorted distinct values of that same edge, yielding dense integer
// indices starting at 0 regardless of pixel spacing. Cell order follows box
// order.
func NewStructure(boxes []BoundingBox) *Structure {
	s := &Structure{}
	if len(boxes) == 0 {
		return s
	}

	grids := makeGridCoords(boxes)
	s.cells = make([]*Cell, len(boxes))
	for i, box := range boxes {
		s.cells[i] = &Cell{BBox: box, Grid: grids[i]}
		if grids[i].RowEnd >= s.rows {
			s.rows = grids[i].RowEnd + 1
		}
		if grids[i].ColEnd >= s.cols {
			s.cols = grids[i].ColEnd + 1
		}
	}

	s.layout = make([][]*Cell, s.rows)
	for r := range s.layout {
		s.layout[r] = make([]*Cell, s.cols)
	}
	for _, cell := range s.cells {
		for r := cell.Grid.Row; r <= cell.Grid.RowEnd; r++ {
			for c := cell.Grid.Col; c <= cell.Grid.ColEnd; c++ {
				s.layout[r][c] = cell
			}
		}
	}
	return s
}

// makeGridCoords ranks each of the four edge columns independently. The
// decomposer always cuts across the full width or height of a sub-image, so
// the pool of Left values and the pool of Right values line up cell by cell;
// ranking them separately keeps Col==ColEnd for unmerged cells.
func makeGridCoords(boxes []BoundingBox) []GridCoord {
	ranked := make([][]int, 4)
	for coord := 0; coord < 4; coord++ {
		values := make([]int, len(boxes))
		for i, box := range boxes {
			values[i] = box.Coord(coord)
		}
		ranked[coord] = rankValues(values)
	}

	grids := make([]GridCoord, len(boxes))
	for i := range boxes {
		grids[i] = GridCoord{
			Col:    ranked[0][i],
			Row:    ranked[1][i],
			ColEnd: ranked[2][i],
			RowEnd: ranked[3][i],
		}
	}
	return grids
}

// rankValues maps each value to its zero-based rank among the sorted distinct
// values of the slice.
func rankValues(values []int) []int {
	distinct := make([]int, 0, len(values))
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Ints(distinct)

	rank := make(map[int]int, len(distinct))
	for i, v := range distinct {
		rank[v] = i
	}

	out := make([]int, len(values))
	for i, v := range values {
		out[i] = rank[v]
	}
	return out
}

// CellCount returns the number of cells.
func (s *Structure) CellCount() int {
	return len(s.cells)
}

// Rows returns the number of logical grid rows.
func (s *Structure) Rows() int {
	return s.rows
}

// Cols returns the number of logical grid columns.
func (s *Structure) Cols() int {
	return s.cols
}

// Cells returns the cells in recognition order.
func (s *Structure) Cells() []*Cell {
	out := make([]*Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// CellAt returns the cell owning grid position (row, col), or nil when the
// position is out of range. A merged cell is returned for every position it
// spans.
func (s *Structure) CellAt(row, col int) *Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return nil
	}
	return s.layout[row][col]
}

// BoundingBoxes returns the cells' bounding boxes in recognition order.
func (s *Structure) BoundingBoxes() []BoundingBox {
	out := make([]BoundingBox, len(s.cells))
	for i, cell := range s.cells {
		out[i] = cell.BBox
	}
	return out
}

// GridCoords returns the cells' grid coordinates in recognition order.
func (s *Structure) GridCoords() []GridCoord {
	out := make([]GridCoord, len(s.cells))
	for i, cell := range s.cells {
		out[i] = cell.Grid
	}
	return out
}

// Content returns the cells' content in recognition order.
func (s *Structure) Content() []string {
	out := make([]string, len(s.cells))
	for i, cell := range s.cells {
		out[i] = cell.Content
	}
	return out
}

// SetContent assigns recognized text to cells in order, one string per cell,
// and returns the number of cells filled. A count mismatch is not an error:
// with fewer strings than cells the remaining cells keep empty content, with
// more strings the excess is ignored. Callers surface the mismatch as a
// non-fatal warning.
func (s *Structure) SetContent(contents []string) int {
	n := len(contents)
	if n > len(s.cells) {
		n = len(s.cells)
	}
	for i := 0; i < n; i++ {
		s.cells[i].Content = contents[i]
	}
	return n
}
