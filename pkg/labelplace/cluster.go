package labelplace

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Distance is a proximity threshold, expressed per axis.
type Distance struct {
	X float64
	Y float64
}

// UniformDistance returns a Distance with the same threshold on both axes.
func UniformDistance(d float64) Distance {
	return Distance{X: d, Y: d}
}

// ClusterByProximity groups n items into connected components of spatial
// proximity. Two items are neighbours when their bounding boxes, each
// inflated by dist.X horizontally and dist.Y vertically on every side,
// intersect; a cluster is the transitive closure of that relation.
//
// The bounding box of item i is obtained through bboxOf, so the detector
// works for any entity that can report a rectangle: markers, labels, or
// points as degenerate rectangles.
//
// Ordering between clusters and within a cluster reflects the search order
// and is deterministic for identical inputs, but not otherwise contractual.
func ClusterByProximity(n int, bboxOf func(i int) Rect, dist Distance) [][]int {
	if n <= 0 {
		return nil
	}

	boxes := make([]Rect, n)
	for i := 0; i < n; i++ {
		boxes[i] = bboxOf(i)
	}
	index := NewIndex(boxes)

	visited := mapset.NewThreadUnsafeSet[int]()
	var clusters [][]int
	for i := 0; i < n; i++ {
		if visited.Contains(i) {
			continue
		}
		visited.Add(i)

		var cluster []int
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			cluster = append(cluster, cur)

			// Inflating one box of the pair by twice the distance on every
			// edge is equivalent to inflating both by the distance.
			for _, hit := range index.Search(boxes[cur].Inflate(2*dist.X, 2*dist.Y)) {
				if !visited.Contains(hit) {
					visited.Add(hit)
					queue = append(queue, hit)
				}
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}
