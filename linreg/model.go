package linreg

// DataPoint is one observed (x, y) sample.
type DataPoint struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// LineParameters describes y = M*x + B. The zero value is the initial line.
type LineParameters struct {
	M float64 `yaml:"m" json:"m"`
	B float64 `yaml:"b" json:"b"`
}

func (p LineParameters) At(x float64) float64 {
	return p.M*x + p.B
}

type Dataset []DataPoint

func (ds Dataset) Len() int {
	return len(ds)
}

func (ds Dataset) Clone() Dataset {
	if ds == nil {
		return nil
	}

	return append(Dataset{}, ds...)
}

func (ds Dataset) XY() (xs, ys []float64) {
	xs = make([]float64, len(ds))
	ys = make([]float64, len(ds))

	for idx, point := range ds {
		xs[idx] = point.X
		ys[idx] = point.Y
	}

	return
}
