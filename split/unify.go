package split

import (
	"sort"

	"github.com/gridmill/tessella/model"
)

// UnifyBoxes reconciles near-duplicate boundary coordinates across boxes.
// Split coordinates derived independently in different recursive branches can
// differ by a few pixels for what is the same logical boundary; each of the
// four edge columns is corrected independently: distinct values are sorted
// and greedily clustered while the gap from the previous value in the cluster
// stays within the tolerance, and every value in a cluster is replaced by the
// cluster's truncated mean.
//
// The box count never changes, only coordinate values. Because the decomposer
// cuts across the full width or height of a sub-image, the Left and Right
// pools (and Top and Bottom pools) are each axis-consistent, so independent
// per-edge correction cannot cross a box's own edge pair.
func UnifyBoxes(boxes []model.BoundingBox, tolerance int) []model.BoundingBox {
	out := make([]model.BoundingBox, len(boxes))
	copy(out, boxes)

	for coord := 0; coord < 4; coord++ {
		values := make([]int, len(boxes))
		for i, box := range boxes {
			values[i] = box.Coord(coord)
		}
		remap := clusterValues(values, tolerance)
		for i := range out {
			out[i] = out[i].WithCoord(coord, remap[out[i].Coord(coord)])
		}
	}
	return out
}

// clusterValues groups sorted distinct values into chains with inter-value
// gaps at most tolerance, and maps every member to its chain's mean.
func clusterValues(values []int, tolerance int) map[int]int {
	distinct := make([]int, 0, len(values))
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Ints(distinct)

	remap := make(map[int]int, len(distinct))
	var cluster []int
	flush := func() {
		if len(cluster) == 0 {
			return
		}
		sum := 0
		for _, v := range cluster {
			sum += v
		}
		mean := sum / len(cluster)
		for _, v := range cluster {
			remap[v] = mean
		}
		cluster = cluster[:0]
	}

	for i, v := range distinct {
		if i > 0 && v-distinct[i-1] > tolerance {
			flush()
		}
		cluster = append(cluster, v)
	}
	flush()
	return remap
}
