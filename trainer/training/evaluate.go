package training

import (
	"math"

	"github.com/pkg/errors"
)

// Eval holds the held-out regression metrics of one fitted model.
type Eval struct {
	// MAE mean absolute error.
	MAE float64

	// MSE mean square error.
	MSE float64

	// RMSE root mean square error.
	RMSE float64

	// R2 coefficient of determination.
	R2 float64
}

// Evaluate computes held-out metrics from predicted and actual label columns.
func Evaluate(predicted, actual []float64) (*Eval, error) {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return nil, errors.Errorf("evaluate requires equal non-empty columns, got %d and %d", len(predicted), len(actual))
	}

	var maeSum, mseSum, mean float64
	for i := range predicted {
		maeSum += math.Abs(actual[i] - predicted[i])
		mseSum += math.Pow(actual[i]-predicted[i], 2)
		mean += actual[i]
	}
	mean /= float64(len(actual))

	var tssSum float64
	for i := range actual {
		tssSum += math.Pow(actual[i]-mean, 2)
	}

	e := &Eval{
		MAE:  maeSum / float64(len(predicted)),
		MSE:  mseSum / float64(len(predicted)),
		RMSE: math.Sqrt(mseSum / float64(len(predicted))),
		R2:   1 - mseSum/tssSum,
	}
	if err := e.Check(); err != nil {
		return nil, err
	}
	return e, nil
}

// Check rejects models whose metrics degenerated, e.g. R2 when the held-out
// labels are constant.
func (e *Eval) Check() error {
	for _, m := range []float64{e.MAE, e.MSE, e.RMSE, e.R2} {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return errors.New("model metrics are not finite")
		}
	}
	return nil
}
