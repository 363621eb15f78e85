// Package forest implements a bagged ensemble of CART regression trees with
// impurity-based feature importances. The ensemble is fully deterministic for
// a fixed seed: fitting the same matrix twice yields identical trees,
// predictions and importances.
package forest

import (
	"encoding/gob"
	"io"
	"math/rand"

	"github.com/pkg/errors"
)

// Params are the ensemble hyperparameters.
type Params struct {
	// Trees is the number of trees in the ensemble.
	Trees int

	// MaxDepth limits the depth of every tree.
	MaxDepth int

	// MinSamplesSplit is the minimum number of samples required to split a node.
	MinSamplesSplit int

	// MinSamplesLeaf is the minimum number of samples required in a leaf.
	MinSamplesLeaf int

	// Seed drives bootstrap sampling.
	Seed int64
}

// DefaultParams returns the reference hyperparameters.
func DefaultParams() Params {
	return Params{
		Trees:           100,
		MaxDepth:        10,
		MinSamplesSplit: 5,
		MinSamplesLeaf:  2,
		Seed:            42,
	}
}

// Node is one tree node in the flat node-slice layout. Leaf nodes keep the
// mean label of the samples they cover.
type Node struct {
	FeatureIdx int
	Threshold  float64
	Left       int
	Right      int
	Value      float64
	Leaf       bool
}

// Tree is a single regression tree.
type Tree struct {
	Nodes []Node
}

// Predict walks the tree for one feature row.
func (t *Tree) Predict(x []float64) float64 {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Leaf {
			return node.Value
		}
		if x[node.FeatureIdx] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

// Forest is a fitted regression ensemble. It is immutable after Fit and safe
// for unsynchronized concurrent reads.
type Forest struct {
	Params      Params
	NumFeatures int
	Trees       []Tree

	// Importances is the per-feature importance vector, non-negative and
	// normalized to sum 1 over the features.
	Importances []float64
}

// Fit trains the ensemble on the given matrix. Rows are samples, columns are
// features in canonical order.
func Fit(features [][]float64, labels []float64, params Params) (*Forest, error) {
	if len(features) == 0 {
		return nil, errors.New("empty training matrix")
	}

	if len(features) != len(labels) {
		return nil, errors.Errorf("features and labels size mismatch: %d != %d", len(features), len(labels))
	}

	numFeatures := len(features[0])
	for i, row := range features {
		if len(row) != numFeatures {
			return nil, errors.Errorf("row %d has %d features, want %d", i, len(row), numFeatures)
		}
	}

	if params.Trees <= 0 || params.MaxDepth <= 0 {
		return nil, errors.New("trees and max depth must be positive")
	}

	f := &Forest{
		Params:      params,
		NumFeatures: numFeatures,
		Trees:       make([]Tree, 0, params.Trees),
		Importances: make([]float64, numFeatures),
	}

	n := len(features)
	for i := 0; i < params.Trees; i++ {
		// Each tree gets its own generator so the ensemble stays
		// deterministic regardless of build order.
		rng := rand.New(rand.NewSource(params.Seed + int64(i)))
		sample := make([]int, n)
		for j := range sample {
			sample[j] = rng.Intn(n)
		}

		b := &builder{
			params:      params,
			features:    features,
			labels:      labels,
			total:       n,
			importances: f.Importances,
		}
		b.build(sample, 0)
		f.Trees = append(f.Trees, Tree{Nodes: b.nodes})
	}

	var sum float64
	for _, imp := range f.Importances {
		sum += imp
	}
	if sum > 0 {
		for i := range f.Importances {
			f.Importances[i] /= sum
		}
	}
	return f, nil
}

// Predict returns the ensemble prediction, the mean over all trees.
func (f *Forest) Predict(x []float64) (float64, error) {
	if len(f.Trees) == 0 {
		return 0, errors.New("no fitted model")
	}

	if len(x) != f.NumFeatures {
		return 0, errors.Errorf("feature vector has %d values, want %d", len(x), f.NumFeatures)
	}

	var sum float64
	for i := range f.Trees {
		sum += f.Trees[i].Predict(x)
	}
	return sum / float64(len(f.Trees)), nil
}

// TreePredictions returns every constituent tree's prediction. The dispersion
// of the returned values is the ensemble's agreement signal.
func (f *Forest) TreePredictions(x []float64) ([]float64, error) {
	if len(f.Trees) == 0 {
		return nil, errors.New("no fitted model")
	}

	if len(x) != f.NumFeatures {
		return nil, errors.Errorf("feature vector has %d values, want %d", len(x), f.NumFeatures)
	}

	preds := make([]float64, len(f.Trees))
	for i := range f.Trees {
		preds[i] = f.Trees[i].Predict(x)
	}
	return preds, nil
}

// Encode writes the fitted ensemble with gob.
func (f *Forest) Encode(w io.Writer) error {
	if len(f.Trees) == 0 {
		return errors.New("no fitted model")
	}
	return gob.NewEncoder(w).Encode(f)
}

// Decode reads a fitted ensemble written by Encode.
func Decode(r io.Reader) (*Forest, error) {
	var f Forest
	if err := gob.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}

	if len(f.Trees) == 0 {
		return nil, errors.New("decoded model has no trees")
	}
	return &f, nil
}
