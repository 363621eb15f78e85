package forest

import "sort"

// builder grows one tree over a bootstrap sample and accumulates weighted
// impurity decreases into the shared importance vector.
type builder struct {
	params      Params
	features    [][]float64
	labels      []float64
	total       int
	importances []float64
	nodes       []Node
}

// build grows the subtree covering the given sample indexes and returns the
// index of its root node.
func (b *builder) build(idxs []int, depth int) int {
	mean, variance := b.meanVariance(idxs)
	if depth >= b.params.MaxDepth || len(idxs) < b.params.MinSamplesSplit || variance == 0 {
		return b.leaf(mean)
	}

	feature, threshold, gain, ok := b.bestSplit(idxs, variance)
	if !ok {
		return b.leaf(mean)
	}

	left := make([]int, 0, len(idxs))
	right := make([]int, 0, len(idxs))
	for _, i := range idxs {
		if b.features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	if len(left) < b.params.MinSamplesLeaf || len(right) < b.params.MinSamplesLeaf {
		return b.leaf(mean)
	}

	b.importances[feature] += gain * float64(len(idxs)) / float64(b.total)

	root := len(b.nodes)
	b.nodes = append(b.nodes, Node{FeatureIdx: feature, Threshold: threshold, Value: mean})
	b.nodes[root].Left = b.build(left, depth+1)
	b.nodes[root].Right = b.build(right, depth+1)
	return root
}

func (b *builder) leaf(value float64) int {
	b.nodes = append(b.nodes, Node{FeatureIdx: -1, Left: -1, Right: -1, Value: value, Leaf: true})
	return len(b.nodes) - 1
}

func (b *builder) meanVariance(idxs []int) (float64, float64) {
	var sum, sumSq float64
	for _, i := range idxs {
		sum += b.labels[i]
		sumSq += b.labels[i] * b.labels[i]
	}
	n := float64(len(idxs))
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, variance
}

// bestSplit scans every feature for the threshold with the largest variance
// reduction that leaves at least MinSamplesLeaf samples on both sides.
func (b *builder) bestSplit(idxs []int, parentVariance float64) (int, float64, float64, bool) {
	n := len(idxs)
	numFeatures := len(b.features[idxs[0]])

	bestFeature := -1
	bestThreshold := 0.0
	bestGain := 0.0

	values := make([]float64, n)
	labels := make([]float64, n)
	order := make([]int, n)

	for feature := 0; feature < numFeatures; feature++ {
		for j, i := range idxs {
			values[j] = b.features[i][feature]
			labels[j] = b.labels[i]
			order[j] = j
		}
		sort.Slice(order, func(a, c int) bool {
			if values[order[a]] != values[order[c]] {
				return values[order[a]] < values[order[c]]
			}
			return labels[order[a]] < labels[order[c]]
		})

		var leftSum, leftSumSq float64
		var totalSum, totalSumSq float64
		for _, j := range order {
			totalSum += labels[j]
			totalSumSq += labels[j] * labels[j]
		}

		for pos := 0; pos < n-1; pos++ {
			label := labels[order[pos]]
			leftSum += label
			leftSumSq += label * label

			// Only split between distinct values.
			if values[order[pos]] == values[order[pos+1]] {
				continue
			}

			nl := pos + 1
			nr := n - nl
			if nl < b.params.MinSamplesLeaf || nr < b.params.MinSamplesLeaf {
				continue
			}

			leftVar := variance(leftSum, leftSumSq, nl)
			rightVar := variance(totalSum-leftSum, totalSumSq-leftSumSq, nr)
			gain := parentVariance - (float64(nl)*leftVar+float64(nr)*rightVar)/float64(n)
			if gain > bestGain {
				bestGain = gain
				bestFeature = feature
				bestThreshold = (values[order[pos]] + values[order[pos+1]]) / 2
			}
		}
	}

	if bestFeature == -1 {
		return -1, 0, 0, false
	}
	return bestFeature, bestThreshold, bestGain, true
}

func variance(sum, sumSq float64, n int) float64 {
	mean := sum / float64(n)
	v := sumSq/float64(n) - mean*mean
	if v < 0 {
		v = 0
	}
	return v
}
