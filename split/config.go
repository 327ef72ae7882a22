package split

// Config holds every threshold used by the splitters and the unifier. There
// are no ambient defaults inside the algorithms: a Config is passed explicitly
// into every call.
//
// The two-element arrays hold the value for column splits at index 0 and for
// row splits at index 1.
type Config struct {
	// MaxFilledInEmptyLine is the maximum number of ink pixels a line may
	// contain and still be classified as empty.
	MaxFilledInEmptyLine int

	// MaxMissingToBeStillFull is the maximum number of background pixels a
	// line may contain and still be classified as full (a drawn border).
	MaxMissingToBeStillFull int

	// MinEmptyLineWidth is the minimum width of a run of empty lines for the
	// run to count as a separator. Narrower gaps are word spacing inside a
	// cell, not cell boundaries.
	MinEmptyLineWidth [2]int

	// MinEmptyLineDistanceFromBorder drops empty runs starting within this
	// distance of either border of the current sub-image.
	MinEmptyLineDistanceFromBorder [2]int

	// MinDistanceFromFull drops an empty run when a full line begins within
	// this distance of the run's end: whitespace hugging a drawn border is
	// part of that border, not a separator of its own.
	MinDistanceFromFull int

	// IgnoreSplitDistanceLessThan drops adjacent split pairs at this distance
	// or less; the area between them (typically the drawn line itself) is not
	// treated as a cell.
	IgnoreSplitDistanceLessThan int

	// MaxDifferenceInOneGroup is the unifier tolerance: boundary coordinates
	// within this distance of the previous value in a cluster collapse to the
	// cluster mean.
	MaxDifferenceInOneGroup int
}

// DefaultConfig returns the thresholds tuned for software-rendered tables at
// typical screen resolution.
func DefaultConfig() Config {
	return Config{
		MaxFilledInEmptyLine:           3,
		MaxMissingToBeStillFull:        5,
		MinEmptyLineWidth:              [2]int{14, 4},
		MinEmptyLineDistanceFromBorder: [2]int{5, 5},
		MinDistanceFromFull:            3,
		IgnoreSplitDistanceLessThan:    6,
		MaxDifferenceInOneGroup:        5,
	}
}

// Span is one half-open sub-region [Start, End) along a single axis, used to
// slice the current sub-image for recursion.
type Span struct {
	Start, End int
}
