package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	Pi float32 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	Deg2RadMultiplier float32 = Pi / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	Rad2DegMultiplier float32 = 180.0 / Pi
	/** @brief Smallest positive number where 1.0 + FloatEpsilon != 1.0 */
	FloatEpsilon float32 = 1.192092896e-07
)

/**
 * Note that these are here in order to prevent having to convert
 * back and forth between float32 and float64 everywhere.
 */
func Sin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func Tan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func Sqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func Abs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// DegToRad converts the supplied degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * Deg2RadMultiplier
}

// RadToDeg converts the supplied radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * Rad2DegMultiplier
}
