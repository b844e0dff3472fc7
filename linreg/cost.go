package linreg

import (
	"gonum.org/v1/gonum/stat"
)

// Cost is the sum of squared errors J(m, b) that Step descends on.
func Cost(current LineParameters, points Dataset) (j float64, err error) {
	if err = Validate(current, points); err != nil {
		return
	}

	for _, point := range points {
		e := ErrorAt(point, current)
		j += e * e
	}

	return
}

// LeastSquares is the closed form fit gradient descent converges to.
func LeastSquares(points Dataset) (params LineParameters, err error) {
	if err = Validate(LineParameters{}, points); err != nil {
		return
	}

	xs, ys := points.XY()

	if !spread(xs) {
		err = ErrDegenerate

		return
	}

	params.B, params.M = stat.LinearRegression(xs, ys, nil, false)

	return
}

func spread(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return true
		}
	}

	return false
}

// Endpoints evaluates the line at fromX and toX, giving a plottable segment.
func Endpoints(params LineParameters, fromX, toX float64) (from, to DataPoint) {
	from = DataPoint{X: fromX, Y: params.At(fromX)}
	to = DataPoint{X: toX, Y: params.At(toX)}

	return
}
