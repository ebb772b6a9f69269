package dataset

import (
	"fmt"
	"sort"
)

// NumericImputation selects how missing continuous values are handled.
type NumericImputation string

// Numeric imputation policies.
const (
	NumericMean   NumericImputation = "mean"
	NumericMedian NumericImputation = "median"
	NumericDrop   NumericImputation = "drop"
)

// CategoricalImputation selects how missing categorical values are
// handled.
type CategoricalImputation string

// Categorical imputation policies.
const (
	CategoricalMode CategoricalImputation = "mode"
	CategoricalDrop CategoricalImputation = "drop"
)

// Options configure preparation. Imputation and binning are policy
// choices, not correctness-critical algorithms, so they are exposed as
// configuration with the study's defaults.
type Options struct {
	Numeric     NumericImputation
	Categorical CategoricalImputation
	AgeBins     []float64
	BMIBins     []float64
	GlucoseBins []float64
}

// DefaultOptions returns the policy used by the underlying study:
// mean imputation for numerics, mode for categoricals, and the
// published bin edges for age, BMI, and glucose.
func DefaultOptions() Options {
	return Options{
		Numeric:     NumericMean,
		Categorical: CategoricalMode,
		AgeBins:     []float64{30, 60},
		BMIBins:     []float64{18.5, 25, 30},
		GlucoseBins: []float64{100, 150},
	}
}

// Validate ensures the options are usable.
func (o Options) Validate() error {
	switch o.Numeric {
	case NumericMean, NumericMedian, NumericDrop:
	default:
		return fmt.Errorf("invalid numeric imputation policy %q", o.Numeric)
	}

	switch o.Categorical {
	case CategoricalMode, CategoricalDrop:
	default:
		return fmt.Errorf("invalid categorical imputation policy %q", o.Categorical)
	}

	for name, bins := range map[string][]float64{
		"age":     o.AgeBins,
		"bmi":     o.BMIBins,
		"glucose": o.GlucoseBins,
	} {
		if len(bins) == 0 {
			return fmt.Errorf("%s bins cannot be empty", name)
		}
		if !sort.Float64sAreSorted(bins) {
			return fmt.Errorf("%s bins must be ascending, got %v", name, bins)
		}
	}

	return nil
}
