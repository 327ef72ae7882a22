package model

// Cell is one recognized table entry: a pixel bounding box, a logical grid
// coordinate, and the text content recognized for it. Content starts empty
// and is filled once, after construction, by the OCR collaborator via
// Structure.SetContent.
type Cell struct {
	BBox    BoundingBox
	Grid    GridCoord
	Content string
}
