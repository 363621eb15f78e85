package training

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
)

func TestLoadDataset(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(t *testing.T, d *Dataset, err error)
	}{
		{
			name: "valid dataset",
			path: "testdata/dataset.csv",
			expect: func(t *testing.T, d *Dataset, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(40, d.Size())
				assert.Len(d.Features[0], bio.FeatureCount)
				for _, target := range bio.Targets {
					assert.Len(d.Labels[target], 40)
				}
			},
		},
		{
			name: "missing column",
			path: "testdata/missing_column.csv",
			expect: func(t *testing.T, d *Dataset, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Contains(err.Error(), "missing required column")
				assert.Contains(err.Error(), "adaptation_score")
			},
		},
		{
			name: "too few rows",
			path: "testdata/single_row.csv",
			expect: func(t *testing.T, d *Dataset, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Contains(err.Error(), "at least two")
			},
		},
		{
			name: "missing file",
			path: "testdata/no_such_file.csv",
			expect: func(t *testing.T, d *Dataset, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := LoadDataset(tc.path)
			tc.expect(t, d, err)
		})
	}
}

func TestDataset_Split(t *testing.T) {
	assert := assert.New(t)

	d, err := LoadDataset("testdata/dataset.csv")
	assert.NoError(err)

	train, test := d.Split(0.2, 42)
	assert.Equal(8, test.Size())
	assert.Equal(32, train.Size())
	for _, target := range bio.Targets {
		assert.Len(train.Labels[target], train.Size())
		assert.Len(test.Labels[target], test.Size())
	}

	// Same seed reproduces the same partition.
	train2, test2 := d.Split(0.2, 42)
	assert.Equal(train.Features, train2.Features)
	assert.Equal(test.Features, test2.Features)

	// A different seed shuffles differently.
	_, test3 := d.Split(0.2, 7)
	assert.NotEqual(test.Features, test3.Features)
}

func TestDataset_SplitClamping(t *testing.T) {
	assert := assert.New(t)

	d, err := LoadDataset("testdata/dataset.csv")
	assert.NoError(err)

	// A tiny fraction still yields one test sample.
	train, test := d.Split(0.001, 42)
	assert.Equal(1, test.Size())
	assert.Equal(d.Size()-1, train.Size())

	// A fraction of one still leaves one training sample.
	train, test = d.Split(1.0, 42)
	assert.Equal(1, train.Size())
	assert.Equal(d.Size()-1, test.Size())
}
