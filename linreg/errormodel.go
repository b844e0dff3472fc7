package linreg

// ErrorAt returns actual minus predicted for point under the current line.
// The gradient in Step depends on this sign.
func ErrorAt(point DataPoint, current LineParameters) float64 {
	return point.Y - current.At(point.X)
}
