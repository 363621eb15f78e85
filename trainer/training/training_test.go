package training

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/config"
	"github.com/tmrcoders06-design/BioSentienceAI/trainer/storage"
)

func mockTrainerConfig(t *testing.T) *config.Config {
	cfg := config.New()
	cfg.Dataset.Path = "testdata/dataset.csv"
	cfg.Storage.ModelDir = t.TempDir()
	// Small ensembles keep the test fast.
	cfg.Train.Trees = 10
	cfg.Train.MaxDepth = 5
	return cfg
}

func TestTraining_Train(t *testing.T) {
	assert := assert.New(t)

	cfg := mockTrainerConfig(t)
	store := storage.New(cfg.Storage.ModelDir)
	md, err := New(cfg, store).Train()
	assert.NoError(err)

	assert.Equal(40, md.DatasetSize)
	assert.Equal(bio.FeatureNames, md.Features)
	assert.Equal(cfg.Train.Seed, md.Settings.Seed)
	assert.Len(md.Models, len(bio.Targets))

	for _, target := range bio.Targets {
		info, ok := md.Models[string(target)]
		assert.True(ok, string(target))
		assert.Equal(target.Description(), info.Description)
		assert.Len(info.TopFeatures, TopFeatureCount)
		assert.GreaterOrEqual(info.MSE, float64(0))
		assert.Equal(store.ModelFilename(target), info.ModelPath)

		// Ranking is descending.
		for i := 1; i < len(info.TopFeatures); i++ {
			assert.GreaterOrEqual(info.TopFeatures[i-1].Importance, info.TopFeatures[i].Importance)
		}

		// The persisted artifact decodes and predicts.
		f, err := store.OpenModel(target)
		assert.NoError(err)
		assert.Len(f.Trees, cfg.Train.Trees)
	}

	// The metadata document round-trips through storage.
	loaded, err := store.Metadata()
	assert.NoError(err)
	assert.Equal(md.DatasetSize, loaded.DatasetSize)
	assert.Equal(md.Models, loaded.Models)
}

func TestTraining_TrainDeterministic(t *testing.T) {
	assert := assert.New(t)

	first, err := New(mockTrainerConfig(t), storage.New(t.TempDir())).Train()
	assert.NoError(err)
	second, err := New(mockTrainerConfig(t), storage.New(t.TempDir())).Train()
	assert.NoError(err)

	for _, target := range bio.Targets {
		a := first.Models[string(target)]
		b := second.Models[string(target)]
		assert.Equal(a.R2Score, b.R2Score, string(target))
		assert.Equal(a.MSE, b.MSE, string(target))
		assert.Equal(a.TopFeatures, b.TopFeatures, string(target))
	}
}

func TestTraining_TrainMissingDataset(t *testing.T) {
	assert := assert.New(t)

	cfg := mockTrainerConfig(t)
	cfg.Dataset.Path = "testdata/no_such_file.csv"
	_, err := New(cfg, storage.New(cfg.Storage.ModelDir)).Train()
	assert.Error(err)
}
