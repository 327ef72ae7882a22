// Package model defines the data types produced by table structure
// recognition.
//
// # Coordinate Conventions
//
// Two coordinate spaces appear throughout:
//
//   - Pixel space: [BoundingBox] edges in the source image, X growing right
//     (columns), Y growing down (rows), half-open on Right and Bottom.
//   - Grid space: [GridCoord] ranks in the deduplicated logical grid,
//     zero-based and contiguous on each axis.
//
// # Structure
//
// [Structure] is the top-level aggregate: an ordered list of [Cell] values
// plus a dense row/column layout. Merged cells occupy several layout
// positions but remain a single Cell:
//
//	st := model.NewStructure(boxes)
//	cell := st.CellAt(0, 2)       // owning cell, even inside a merged span
//	st.SetContent(recognized)     // one string per cell, in order
//
// Geometry and grid coordinates never change after construction; content is
// assigned once by the OCR collaborator.
package model
