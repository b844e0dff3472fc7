package linreg

import "math"

// gradient accumulates the normalised partials of J over the dataset. Values are
// never changed in place, Combine returns the next accumulator.
type gradient struct {
	n float64
	m float64
	b float64
}

func newGradient(n int) gradient {
	return gradient{
		n: float64(n),
	}
}

func (g gradient) Combine(point DataPoint, current LineParameters) gradient {
	err := ErrorAt(point, current)

	return gradient{
		n: g.n,
		m: g.m + -(1/g.n)*point.X*err,
		b: g.b + -(1/g.n)*err,
	}
}

func (g gradient) Apply(current LineParameters, learningRate float64) LineParameters {
	return LineParameters{
		M: current.M - learningRate*g.m,
		B: current.B - learningRate*g.b,
	}
}

// Step runs one batch gradient descent update of current over points.
//
// Empty datasets, a learning rate that is not a positive finite number and
// non-finite coordinates are rejected with an error wrapping
// commerr.ErrInvalidArgument before any arithmetic happens.
func Step(current LineParameters, points Dataset, learningRate float64) (next LineParameters, err error) {
	if err = ValidateLearningRate(learningRate); err != nil {
		return
	}

	if err = Validate(current, points); err != nil {
		return
	}

	g := newGradient(points.Len())

	for _, point := range points {
		g = g.Combine(point, current)
	}

	next = g.Apply(current, learningRate)

	return
}

func ValidateLearningRate(learningRate float64) error {
	if !isFinite(learningRate) || learningRate <= 0 {
		return ErrInvalidLearningRate
	}

	return nil
}

// Validate checks the invariants shared by every operation over a dataset.
func Validate(current LineParameters, points Dataset) error {
	if points.Len() == 0 {
		return ErrEmptyDataset
	}

	if !isFinite(current.M) || !isFinite(current.B) {
		return ErrNonFinite
	}

	for _, point := range points {
		if !isFinite(point.X) || !isFinite(point.Y) {
			return ErrNonFinite
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
