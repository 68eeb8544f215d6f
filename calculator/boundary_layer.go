package calculator

import "math"

// 平板层流边界层，均不做参数检查：nu、re 非正时结果为 Inf 或 NaN

// 雷诺数 Re_x = U * x / nu
func ReynoldsNumber(uInf, x, nu float64) float64 {
	return uInf * x / nu
}

// 边界层厚度 delta = 5x / sqrt(Re_x)
func BoundaryLayerThickness(re, x float64) float64 {
	return 5.0 * x / math.Sqrt(re)
}

// 相似变量 eta = y * sqrt(U / (nu * x))
func Eta(y, x, uInf, nu float64) float64 {
	return y * math.Sqrt(uInf/(nu*x))
}

func EtaSlice(ys []float64, x, uInf, nu float64) []float64 {
	scale := math.Sqrt(uInf / (nu * x))
	etas := make([]float64, len(ys))
	for i, y := range ys {
		etas[i] = y * scale
	}
	return etas
}

// 速度比 u/U，用 tanh 近似 Blasius 解
func VelocityRatio(eta float64) float64 {
	return math.Tanh(eta)
}

func VelocityRatioSlice(etas []float64) []float64 {
	us := make([]float64, len(etas))
	for i, eta := range etas {
		us[i] = VelocityRatio(eta)
	}
	return us
}
