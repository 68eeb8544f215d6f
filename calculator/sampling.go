package calculator

import "gonum.org/v1/gonum/floats"

// [0, delta] 闭区间上 n 个等距点，n 至少为 2
func Sample(delta float64, n int) []float64 {
	ys := floats.Span(make([]float64, n), 0, delta)
	// 末点精确取 delta，避免步长累积误差
	ys[n-1] = delta
	return ys
}
