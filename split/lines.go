package split

import "sort"

const (
	// densityScale is the integer range the density matrix is normalized to.
	densityScale = 255

	// thresholdSweep bounds the binarization levels scanned for line
	// candidates. Levels at or above the bound never qualify: a line darker
	// than ~16% of the densest region is not a grid line.
	thresholdSweep = 40
)

// LineSpans finds split points along solid drawn grid lines.
//
// Conceptually it builds a density matrix as the outer product of the row and
// column background-sum vectors, normalizes it to 0..densityScale, and scans
// binarization levels in ascending order looking for matrix columns (then
// rows) that fall entirely below the level. Because the matrix is an outer
// product, a column's peak value is reached where the row vector peaks, so
// only the per-line peaks need computing.
//
// Columns are checked before rows at every level, and a qualifying column
// result returns immediately without considering rows at that level: columns
// deliberately win ties when both axes qualify at the same threshold. At most
// one of the two returned slices is non-nil; both nil means no line split
// exists and the caller falls back to whitespace detection.
func (c Config) LineSpans(colSums, rowSums []int) (colSpans, rowSpans []Span) {
	maxCol := maxOf(colSums)
	maxRow := maxOf(rowSums)
	if maxCol == 0 || maxRow == 0 {
		// Uniform ink: the density matrix is all zero and cannot be
		// normalized. Treated as "no line split".
		return nil, nil
	}

	colPeaks := normalizedPeaks(colSums, maxCol)
	rowPeaks := normalizedPeaks(rowSums, maxRow)

	for level := 0; level < thresholdSweep; level++ {
		if spans := c.spansAtLevel(colPeaks, level); len(spans) >= 2 {
			return spans, nil
		}
		if spans := c.spansAtLevel(rowPeaks, level); len(spans) >= 2 {
			return nil, spans
		}
	}
	return nil, nil
}

// normalizedPeaks returns floor(densityScale*sum/max) per line: the peak
// value that line reaches in the normalized density matrix.
func normalizedPeaks(sums []int, max int) []int {
	peaks := make([]int, len(sums))
	for i, s := range sums {
		peaks[i] = densityScale * s / max
	}
	return peaks
}

// spansAtLevel collects the lines whose peak is at or below the level,
// merges in the two borders and pairs adjacent coordinates, dropping pairs
// narrower than the configured minimum separation. An axis qualifies only
// with at least two surviving pairs; one pair is just the image itself.
func (c Config) spansAtLevel(peaks []int, level int) []Span {
	var candidates []int
	for i, p := range peaks {
		if p <= level {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	points := addBorderPoints(candidates, len(peaks))
	return makeSpans(points, c.IgnoreSplitDistanceLessThan)
}

// addBorderPoints merges the coordinates with 0 and max, deduplicated and
// sorted.
func addBorderPoints(points []int, max int) []int {
	merged := make([]int, 0, len(points)+2)
	merged = append(merged, 0)
	merged = append(merged, points...)
	merged = append(merged, max)
	sort.Ints(merged)

	out := merged[:1]
	for _, p := range merged[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// makeSpans pairs adjacent coordinates into half-open spans, keeping only
// pairs strictly wider than minGap.
func makeSpans(points []int, minGap int) []Span {
	var spans []Span
	for i := 1; i < len(points); i++ {
		if points[i]-points[i-1] > minGap {
			spans = append(spans, Span{Start: points[i-1], End: points[i]})
		}
	}
	return spans
}

func maxOf(values []int) int {
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
