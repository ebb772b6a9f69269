package dataset

import (
	"fmt"
	"sort"
	"strconv"
)

// Discretizer buckets a continuous value into one of a fixed set of
// named bands. Bands are right-inclusive: with cuts [30, 60] the value
// 30 falls into "<30" and 60 into "30-60".
type Discretizer struct {
	cuts   []float64
	labels []string
}

// NewDiscretizer derives band labels from ascending cut points:
// cuts [18.5, 25, 30] produce "<18.5", "18.5-25", "25-30", ">30".
func NewDiscretizer(cuts []float64) (*Discretizer, error) {
	if len(cuts) == 0 {
		return nil, fmt.Errorf("discretizer requires at least one cut point")
	}
	if !sort.Float64sAreSorted(cuts) {
		return nil, fmt.Errorf("cut points must be ascending, got %v", cuts)
	}

	labels := make([]string, 0, len(cuts)+1)
	labels = append(labels, "<"+formatCut(cuts[0]))
	for i := 1; i < len(cuts); i++ {
		labels = append(labels, formatCut(cuts[i-1])+"-"+formatCut(cuts[i]))
	}
	labels = append(labels, ">"+formatCut(cuts[len(cuts)-1]))

	return &Discretizer{cuts: cuts, labels: labels}, nil
}

// Band returns the label of the band containing v.
func (d *Discretizer) Band(v float64) string {
	for i, cut := range d.cuts {
		if v <= cut {
			return d.labels[i]
		}
	}
	return d.labels[len(d.labels)-1]
}

// Labels returns every band label in ascending order.
func (d *Discretizer) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

func formatCut(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
