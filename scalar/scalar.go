// scalar is a stand-in for the built-in math package, but the functions are generic over
// the floating-point types a Quaternion can be instantiated with, rather than taking float64s.
// This keeps the quaternion code itself free of float64 conversions regardless of which
// precision it's used at.
package scalar

import "math"

// Float is the set of floating-point types the library works with.
type Float interface {
	~float32 | ~float64
}

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions use).
func ToRadians[F Float](degrees F) F {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees[F Float](radians F) F {
	return radians / math.Pi * 180
}

// Sqrt returns the square root of x.
func Sqrt[F Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[F Float](x F) F {
	return F(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[F Float](x F) F {
	return F(math.Cos(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// IsNaN returns if the provided value is a NaN.
func IsNaN[F Float](x F) bool {
	return math.IsNaN(float64(x))
}
