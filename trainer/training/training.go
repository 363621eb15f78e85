// Package training implements the offline pipeline: load the labeled
// dataset, split it deterministically, fit one regression ensemble per
// target, evaluate each on the held-out partition and persist the artifacts.
package training

import (
	"sort"
	"time"

	logger "github.com/tmrcoders06-design/BioSentienceAI/internal/bslog"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/pkg/forest"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/config"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/storage"
)

// TopFeatureCount is how many leading features the metadata records per model.
const TopFeatureCount = 5

// Training runs the full pipeline.
type Training struct {
	cfg   *config.Config
	store storage.Storage
}

// New returns a Training instance.
func New(cfg *config.Config, store storage.Storage) *Training {
	return &Training{
		cfg:   cfg,
		store: store,
	}
}

// Train fits, evaluates and persists one model per target and writes the
// metadata document. The three targets are modeled independently.
func (t *Training) Train() (*storage.Metadata, error) {
	log := logger.WithDataset(t.cfg.Dataset.Path)
	ds, err := LoadDataset(t.cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	log.Infof("loaded %d samples with %d features", ds.Size(), bio.FeatureCount)

	train, test := ds.Split(t.cfg.Train.TestSplit, t.cfg.Train.Seed)
	log.Infof("split dataset: %d train, %d test", train.Size(), test.Size())

	md := &storage.Metadata{
		TrainingDate: time.Now(),
		DatasetSize:  ds.Size(),
		Features:     bio.FeatureNames,
		Settings: storage.TrainingSettings{
			Seed:            t.cfg.Train.Seed,
			TestSplit:       t.cfg.Train.TestSplit,
			Trees:           t.cfg.Train.Trees,
			MaxDepth:        t.cfg.Train.MaxDepth,
			MinSamplesSplit: t.cfg.Train.MinSamplesSplit,
			MinSamplesLeaf:  t.cfg.Train.MinSamplesLeaf,
		},
		Models: make(map[string]storage.ModelInfo, len(bio.Targets)),
	}

	params := forest.Params{
		Trees:           t.cfg.Train.Trees,
		MaxDepth:        t.cfg.Train.MaxDepth,
		MinSamplesSplit: t.cfg.Train.MinSamplesSplit,
		MinSamplesLeaf:  t.cfg.Train.MinSamplesLeaf,
		Seed:            t.cfg.Train.Seed,
	}

	for _, target := range bio.Targets {
		tlog := logger.WithTarget(string(target))
		tlog.Infof("fitting %d trees", params.Trees)

		f, err := forest.Fit(train.Features, train.Labels[target], params)
		if err != nil {
			return nil, err
		}

		predicted := make([]float64, test.Size())
		for i, row := range test.Features {
			if predicted[i], err = f.Predict(row); err != nil {
				return nil, err
			}
		}

		ev, err := Evaluate(predicted, test.Labels[target])
		if err != nil {
			return nil, err
		}
		tlog.Infof("held-out metrics: R2=%.4f MSE=%.6f MAE=%.6f", ev.R2, ev.MSE, ev.MAE)

		if err := t.store.SaveModel(target, f); err != nil {
			return nil, err
		}

		md.Models[string(target)] = storage.ModelInfo{
			Description: target.Description(),
			R2Score:     ev.R2,
			MSE:         ev.MSE,
			TopFeatures: topFeatures(f.Importances, TopFeatureCount),
			ModelPath:   t.store.ModelFilename(target),
		}
	}

	if err := t.store.SaveMetadata(md); err != nil {
		return nil, err
	}
	log.Infof("trained %d models", len(md.Models))
	return md, nil
}

// topFeatures ranks the importance vector descending and keeps the top k.
// Ties break toward the lower feature index so the ranking is stable.
func topFeatures(importances []float64, k int) []storage.FeatureImportance {
	idxs := make([]int, len(importances))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return importances[idxs[a]] > importances[idxs[b]]
	})

	if k > len(idxs) {
		k = len(idxs)
	}
	top := make([]storage.FeatureImportance, 0, k)
	for _, i := range idxs[:k] {
		top = append(top, storage.FeatureImportance{
			Name:       bio.FeatureNames[i],
			Importance: importances[i],
		})
	}
	return top
}
