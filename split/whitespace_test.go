package split

import "testing"

// vec builds a background-sum vector from (value, count) pairs.
func vec(pairs ...[2]int) []int {
	var out []int
	for _, p := range pairs {
		for i := 0; i < p[1]; i++ {
			out = append(out, p[0])
		}
	}
	return out
}

func TestClassifyLines(t *testing.T) {
	cfg := DefaultConfig()
	sums := []int{20, 18, 17, 10, 2, 0}
	state := classifyLines(sums, 20, cfg.MaxFilledInEmptyLine, cfg.MaxMissingToBeStillFull)
	want := []int{lineEmpty, lineEmpty, lineNeither, lineNeither, lineFull, lineFull}
	for i := range want {
		if state[i] != want[i] {
			t.Errorf("Line %d (sum %d): expected state %d, got %d", i, sums[i], want[i], state[i])
		}
	}
}

func TestWhitespaceSpansSplitsOnCentralGap(t *testing.T) {
	cfg := DefaultConfig()
	// 100x20 sub-image: two text blocks separated by a wide central gap.
	// The border gaps are too narrow or too close to the edge to count.
	colSums := vec([2]int{20, 10}, [2]int{10, 21}, [2]int{20, 39}, [2]int{10, 21}, [2]int{20, 9})
	rowSums := vec([2]int{60, 20})

	colSpans, rowSpans := cfg.WhitespaceSpans(colSums, rowSums, 100, 20)
	if rowSpans != nil {
		t.Errorf("Expected no row spans, got %v", rowSpans)
	}
	want := []Span{{0, 50}, {50, 100}}
	if len(colSpans) != len(want) {
		t.Fatalf("Expected %d col spans, got %v", len(want), colSpans)
	}
	for i, s := range want {
		if colSpans[i] != s {
			t.Errorf("Span %d: expected %v, got %v", i, s, colSpans[i])
		}
	}
}

func TestWhitespaceSpansIgnoresNarrowGaps(t *testing.T) {
	cfg := DefaultConfig()
	// Word spacing: gaps narrower than MinEmptyLineWidth must not split.
	colSums := vec([2]int{10, 20}, [2]int{20, 8}, [2]int{10, 20}, [2]int{20, 8}, [2]int{10, 24})
	rowSums := vec([2]int{50, 20})

	colSpans, rowSpans := cfg.WhitespaceSpans(colSums, rowSums, 80, 20)
	if colSpans != nil || rowSpans != nil {
		t.Errorf("Expected no spans, got %v / %v", colSpans, rowSpans)
	}
}

func TestConsecutiveEmptyRunsAbsorbsRunBeforeFullLine(t *testing.T) {
	cfg := DefaultConfig()
	// An empty run that ends right where a full line begins is part of that
	// border, not a separator.
	state := make([]int, 40)
	for i := 10; i < 25; i++ {
		state[i] = lineEmpty
	}
	state[25] = lineFull

	runs := cfg.consecutiveEmptyRuns(state)
	if len(runs) != 0 {
		t.Errorf("Expected run hugging a full line to be absorbed, got %v", runs)
	}
}

func TestConsecutiveEmptyRunsKeepsIsolatedRun(t *testing.T) {
	cfg := DefaultConfig()
	state := make([]int, 40)
	for i := 10; i < 25; i++ {
		state[i] = lineEmpty
	}

	runs := cfg.consecutiveEmptyRuns(state)
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %v", runs)
	}
	if runs[0].start != 10 || runs[0].width != 15 {
		t.Errorf("Expected run start 10 width 15, got %+v", runs[0])
	}
}

func TestConsecutiveEmptyRunsTrailingRun(t *testing.T) {
	cfg := DefaultConfig()
	state := make([]int, 30)
	for i := 12; i < 30; i++ {
		state[i] = lineEmpty
	}

	runs := cfg.consecutiveEmptyRuns(state)
	if len(runs) != 1 {
		t.Fatalf("Expected 1 trailing run, got %v", runs)
	}
	if runs[0].start != 12 || runs[0].width != 18 {
		t.Errorf("Expected run start 12 width 18, got %+v", runs[0])
	}
}

func TestConsecutiveEmptyRunsShortVector(t *testing.T) {
	cfg := DefaultConfig()
	if runs := cfg.consecutiveEmptyRuns([]int{lineEmpty}); runs != nil {
		t.Errorf("Expected no runs for a single-line vector, got %v", runs)
	}
	if runs := cfg.consecutiveEmptyRuns(nil); runs != nil {
		t.Errorf("Expected no runs for an empty vector, got %v", runs)
	}
}

func TestFilterRunsBorderDistance(t *testing.T) {
	runs := []emptyRun{
		{start: 2, width: 20},  // starts too close to the left border
		{start: 40, width: 20}, // kept
		{start: 90, width: 20}, // ends too close to the right border
	}
	out := filterRuns(runs, 112, 5, 14)
	if len(out) != 1 {
		t.Fatalf("Expected 1 surviving run, got %v", out)
	}
	if out[0].start != 40 {
		t.Errorf("Expected surviving run at 40, got %+v", out[0])
	}
}
