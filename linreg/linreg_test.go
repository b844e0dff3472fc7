package linreg

import (
	"errors"
	"math"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const utLearningRate = 0.0001

func utPoints() Dataset {
	return Dataset{{X: 30, Y: 45}, {X: 40, Y: 60}, {X: 100, Y: 150}}
}

func TestErrorAt(t *testing.T) {
	assert.EqualValues(t, 45, ErrorAt(DataPoint{X: 30, Y: 45}, LineParameters{}))
	assert.EqualValues(t, -5, ErrorAt(DataPoint{X: 10, Y: 15}, LineParameters{M: 2}))
	assert.EqualValues(t, 0, ErrorAt(DataPoint{X: 2, Y: 5}, LineParameters{M: 2, B: 1}))
}

func TestStepWorkedExample(t *testing.T) {
	next, err := Step(LineParameters{}, utPoints(), utLearningRate)
	require.Nil(t, err)
	assert.InDelta(t, 0.0085, next.B, 1e-9)
	assert.InDelta(t, 0.6249999999999999, next.M, 1e-9)

	next, err = Step(LineParameters{M: 0.6249, B: 0.0085}, utPoints(), utLearningRate)
	require.Nil(t, err)
	assert.InDelta(t, 0.01345805, next.B, 1e-9)
	assert.InDelta(t, 0.9894768333333332, next.M, 1e-9)
}

func TestStepDeterministic(t *testing.T) {
	current := LineParameters{M: 0.3, B: -1.25}

	first, err := Step(current, utPoints(), utLearningRate)
	require.Nil(t, err)

	for idx := 0; idx < 10; idx++ {
		next, err := Step(current, utPoints(), utLearningRate)
		require.Nil(t, err)
		assert.Equal(t, math.Float64bits(first.M), math.Float64bits(next.M))
		assert.Equal(t, math.Float64bits(first.B), math.Float64bits(next.B))
	}
}

func TestStepTenIterations(t *testing.T) {
	var current LineParameters

	var deltas []float64

	for idx := 0; idx < 10; idx++ {
		next, err := Step(current, utPoints(), utLearningRate)
		require.Nil(t, err)

		deltas = append(deltas, math.Abs(next.M-current.M))
		current = next
	}

	assert.InDelta(t, 0.020299740568747532, current.B, 1e-9)
	assert.InDelta(t, 1.4928897448417577, current.M, 1e-9)

	for idx := 1; idx < len(deltas); idx++ {
		assert.LessOrEqual(t, deltas[idx], deltas[idx-1])
	}
}

func TestStepDoesNotMutate(t *testing.T) {
	points := utPoints()
	snapshot := points.Clone()
	current := LineParameters{M: 0.5, B: 0.25}

	_, err := Step(current, points, utLearningRate)
	require.Nil(t, err)

	assert.Equal(t, snapshot, points)
	assert.Equal(t, LineParameters{M: 0.5, B: 0.25}, current)
}

func TestStepInvalidArguments(t *testing.T) {
	_, err := Step(LineParameters{}, Dataset{}, utLearningRate)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	_, err = Step(LineParameters{}, nil, utLearningRate)
	assert.True(t, errors.Is(err, ErrEmptyDataset))

	for _, rate := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		_, err = Step(LineParameters{}, utPoints(), rate)
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument), rate)
		assert.True(t, errors.Is(err, ErrInvalidLearningRate), rate)
	}

	_, err = Step(LineParameters{M: math.NaN()}, utPoints(), utLearningRate)
	assert.True(t, errors.Is(err, ErrNonFinite))

	_, err = Step(LineParameters{}, Dataset{{X: math.Inf(-1), Y: 1}}, utLearningRate)
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestCost(t *testing.T) {
	j, err := Cost(LineParameters{}, utPoints())
	require.Nil(t, err)
	assert.InDelta(t, 45*45+60*60+150*150, j, 1e-9)

	j, err = Cost(LineParameters{M: 1.5}, utPoints())
	require.Nil(t, err)
	assert.InDelta(t, 0, j, 1e-9)

	_, err = Cost(LineParameters{}, nil)
	assert.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestLeastSquares(t *testing.T) {
	params, err := LeastSquares(utPoints())
	require.Nil(t, err)
	assert.InDelta(t, 1.5, params.M, 1e-9)
	assert.InDelta(t, 0, params.B, 1e-9)

	_, err = LeastSquares(Dataset{{X: 1, Y: 2}, {X: 1, Y: 3}})
	assert.True(t, errors.Is(err, ErrDegenerate))

	_, err = LeastSquares(Dataset{{X: 1, Y: 2}})
	assert.True(t, errors.Is(err, ErrDegenerate))

	_, err = LeastSquares(nil)
	assert.True(t, errors.Is(err, ErrEmptyDataset))
}

func TestEndpoints(t *testing.T) {
	from, to := Endpoints(LineParameters{M: 1.5, B: 2}, 0, 100)
	assert.Equal(t, DataPoint{X: 0, Y: 2}, from)
	assert.Equal(t, DataPoint{X: 100, Y: 152}, to)
}
