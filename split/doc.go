// Package split implements the recursive structure-recognition engine: it
// partitions a binarized table image into disjoint cell bounding boxes.
//
// # Pipeline
//
// [Decompose] drives two splitters over shrinking sub-images:
//
//  1. The grid-line splitter ([Config.LineSpans]) detects solid drawn lines
//     from the outer-product density of the row and column background-sum
//     vectors, scanning binarization levels in ascending order.
//  2. The whitespace splitter ([Config.WhitespaceSpans]) is the fallback when
//     no lines are drawn: it finds runs of empty pixel lines wide enough and
//     far enough from borders to be cell separators.
//
// A sub-image neither splitter can divide becomes a terminal leaf, yielding
// one bounding box. [UnifyBoxes] then collapses near-duplicate boundary
// coordinates from different recursive branches into shared values.
//
// # Tie-Break
//
// When both axes qualify at the same threshold level, columns win and rows
// are not considered at that level. This asymmetry is deliberate and
// load-bearing: changing the order changes the recursion shape and therefore
// the output box order.
//
// All functions are pure, synchronous and free of shared state; concurrent
// calls on distinct bitmaps need no synchronization.
package split
