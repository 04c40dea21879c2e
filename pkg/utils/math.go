package utils

// Lerp 在 a 和 b 之间线性插值。
// t=0 返回 a，t=1 返回 b。
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ratio 返回限制在 [0, 1] 的 part/whole，whole 非正时返回 0
func Ratio(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return Clamp(part/whole, 0, 1)
}
