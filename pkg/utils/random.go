package utils

import (
	"math"
	"math/rand/v2"
)

// RandomRange 返回 [min, max) 内的均匀随机值
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RandomRing 返回 center 周围地面上随机角度、
// [minDist, maxDist] 内随机距离的点。
func RandomRing(rng *rand.Rand, center Vec3, minDist, maxDist, height float64) Vec3 {
	angle := rng.Float64() * 2 * math.Pi
	dist := RandomRange(rng, minDist, maxDist)
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: center.X + sin*dist,
		Y: height,
		Z: center.Z + cos*dist,
	}
}

// NewRand 返回基于 PCG 的随机数生成器，seed 为 0 时随机选取
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
