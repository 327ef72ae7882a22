package split

// Tri-state classification of a single pixel line.
const (
	lineFull    = -1 // almost entirely ink: a drawn border
	lineNeither = 0
	lineEmpty   = 1 // almost entirely background
)

// farAway stands in for "no such line seen yet" in index comparisons; any
// distance threshold added to it stays far below every real index.
const farAway = -1 << 30

// emptyRun is a maximal run of consecutive empty lines.
type emptyRun struct {
	start int // index of the first empty line
	width int // number of consecutive empty lines
}

// WhitespaceSpans finds split points in the gaps between content when no
// grid lines are drawn. width and height are the dimensions of the current
// sub-image; colSums and rowSums are its background-sum vectors.
//
// Per axis, each line is classified as full, empty or neither; maximal empty
// runs are collected, with runs adjacent to full lines absorbed into the
// border they hug; surviving runs are filtered by minimum width and border
// distance, and each one's midpoint becomes a split coordinate. Either
// returned slice may be nil when nothing survives on that axis.
func (c Config) WhitespaceSpans(colSums, rowSums []int, width, height int) (colSpans, rowSpans []Span) {
	colState := classifyLines(colSums, height, c.MaxFilledInEmptyLine, c.MaxMissingToBeStillFull)
	rowState := classifyLines(rowSums, width, c.MaxFilledInEmptyLine, c.MaxMissingToBeStillFull)

	colRuns := filterRuns(c.consecutiveEmptyRuns(colState),
		width, c.MinEmptyLineDistanceFromBorder[0], c.MinEmptyLineWidth[0])
	rowRuns := filterRuns(c.consecutiveEmptyRuns(rowState),
		height, c.MinEmptyLineDistanceFromBorder[1], c.MinEmptyLineWidth[1])

	// Midpoint filtering already happened run by run, so adjacent pairs are
	// kept at any positive distance.
	if len(colRuns) > 0 {
		colSpans = makeSpans(addBorderPoints(runMidpoints(colRuns), width), 0)
	}
	if len(rowRuns) > 0 {
		rowSpans = makeSpans(addBorderPoints(runMidpoints(rowRuns), height), 0)
	}
	return colSpans, rowSpans
}

// classifyLines maps each background sum to the tri-state value. lineLen is
// the number of pixels in one line on this axis. A line that is somehow both
// empty and full (possible only on degenerate, nearly zero-length lines)
// cancels out to neither.
func classifyLines(sums []int, lineLen, maxFilled, maxMissing int) []int {
	state := make([]int, len(sums))
	for i, s := range sums {
		v := 0
		if s > lineLen-maxFilled {
			v++
		}
		if s < maxMissing {
			v--
		}
		state[i] = v
	}
	return state
}

// consecutiveEmptyRuns walks the tri-state vector and collects maximal empty
// runs, applying the full-line absorption rule: an empty run ending right
// before a full line is never appended, and a full line starting within
// MinDistanceFromFull of the previously appended run's end retroactively
// discards that run.
//
// Vectors shorter than two lines cannot contain an interior split and yield
// no runs.
func (c Config) consecutiveEmptyRuns(state []int) []emptyRun {
	if len(state) < 2 {
		return nil
	}

	var runs []emptyRun
	last := state[0]
	lastFull := farAway
	lastEmpty := farAway
	if last == lineFull {
		lastFull = 0
	}
	if last == lineEmpty {
		lastEmpty = 0
	}
	occurrences := 1
	runStart := 0

	// index runs one behind the scanned position, matching the distance
	// bookkeeping of the absorption rule.
	index := 0
	for i := 1; i < len(state); i++ {
		item := state[i]
		index = i - 1
		if item == last {
			occurrences++
			continue
		}
		if item == lineFull {
			if lastEmpty+c.MinDistanceFromFull > index && len(runs) > 0 {
				runs = runs[:len(runs)-1]
			}
			lastFull = index
		} else if last == lineEmpty && lastFull+c.MinDistanceFromFull < index-1 {
			lastEmpty = index - 1
			runs = append(runs, emptyRun{start: runStart, width: occurrences})
		}
		runStart = i
		last = item
		occurrences = 1
	}
	if last == lineEmpty && lastFull+c.MinDistanceFromFull < index-1 {
		runs = append(runs, emptyRun{start: runStart, width: occurrences})
	}
	return runs
}

// filterRuns keeps runs strictly wider than minWidth whose start lies
// strictly further than minBorder from both edges.
func filterRuns(runs []emptyRun, total, minBorder, minWidth int) []emptyRun {
	var out []emptyRun
	for _, r := range runs {
		if r.width > minWidth && r.start > minBorder && r.start+r.width < total-minBorder {
			out = append(out, r)
		}
	}
	return out
}

// runMidpoints returns each run's midpoint coordinate.
func runMidpoints(runs []emptyRun) []int {
	points := make([]int, len(runs))
	for i, r := range runs {
		points[i] = r.start + r.width/2
	}
	return points
}
