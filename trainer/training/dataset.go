package training

import (
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/sjwhitworth/golearn/base"

	"github.com/tmrcoders06-design/BioSentienceAI/pkg/bio"
)

// Dataset is the loaded training matrix plus one label column per target.
// Rows are samples, feature columns follow bio.FeatureNames order.
type Dataset struct {
	Features [][]float64
	Labels   map[bio.Target][]float64
}

// Size returns the number of samples.
func (d *Dataset) Size() int {
	return len(d.Features)
}

// LoadDataset reads the labeled CSV into a float matrix, resolving columns
// by header name. A missing required column or fewer than two rows is a
// fatal error: the dataset can not be split.
func LoadDataset(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	inst, err := base.ParseCSVToInstancesFromReader(file, true)
	if err != nil {
		return nil, err
	}

	attrs := inst.AllAttributes()
	specs := base.ResolveAttributes(inst, attrs)
	specByName := make(map[string]base.AttributeSpec, len(attrs))
	for i, attr := range attrs {
		specByName[attr.GetName()] = specs[i]
	}

	required := make([]string, 0, bio.FeatureCount+len(bio.Targets))
	required = append(required, bio.FeatureNames...)
	for _, target := range bio.Targets {
		required = append(required, string(target))
	}
	for _, name := range required {
		if _, ok := specByName[name]; !ok {
			return nil, errors.Errorf("dataset missing required column: %s", name)
		}
	}

	_, rows := inst.Size()
	if rows < 2 {
		return nil, errors.Errorf("dataset has %d rows, need at least two to split", rows)
	}

	d := &Dataset{
		Features: make([][]float64, rows),
		Labels:   make(map[bio.Target][]float64, len(bio.Targets)),
	}
	for _, target := range bio.Targets {
		d.Labels[target] = make([]float64, rows)
	}

	for i := 0; i < rows; i++ {
		row := make([]float64, bio.FeatureCount)
		for j, name := range bio.FeatureNames {
			row[j] = base.UnpackBytesToFloat(inst.Get(specByName[name], i))
		}
		d.Features[i] = row

		for _, target := range bio.Targets {
			d.Labels[target][i] = base.UnpackBytesToFloat(inst.Get(specByName[string(target)], i))
		}
	}

	return d, nil
}

// Split partitions the dataset into train and test sets. The shuffle is
// driven entirely by the seed, so identical inputs produce bit-identical
// partitions across runs.
func (d *Dataset) Split(testFraction float64, seed int64) (*Dataset, *Dataset) {
	n := d.Size()
	testSize := int(float64(n) * testFraction)
	if testSize < 1 {
		testSize = 1
	}
	if testSize >= n {
		testSize = n - 1
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	test := d.subset(perm[:testSize])
	train := d.subset(perm[testSize:])
	return train, test
}

func (d *Dataset) subset(idxs []int) *Dataset {
	s := &Dataset{
		Features: make([][]float64, 0, len(idxs)),
		Labels:   make(map[bio.Target][]float64, len(d.Labels)),
	}
	for _, i := range idxs {
		s.Features = append(s.Features, d.Features[i])
	}
	for target, labels := range d.Labels {
		column := make([]float64, 0, len(idxs))
		for _, i := range idxs {
			column = append(column, labels[i])
		}
		s.Labels[target] = column
	}
	return s
}
