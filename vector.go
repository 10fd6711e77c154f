package quat

import "github.com/solarlune/quat/scalar"

// 3D vectors are plain [3]F arrays, identical in shape to a Quaternion's vector part;
// there's deliberately no public vector type here. These helpers cover just the vector
// math the quaternion operations need.

func vecAdd[F scalar.Float](a, b [3]F) [3]F {
	a[0] += b[0]
	a[1] += b[1]
	a[2] += b[2]
	return a
}

func vecScale[F scalar.Float](v [3]F, t F) [3]F {
	v[0] *= t
	v[1] *= t
	v[2] *= t
	return v
}

func vecDot[F scalar.Float](a, b [3]F) F {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// vecCross returns the cross product of a and b, following the right-hand rule.
func vecCross[F scalar.Float](a, b [3]F) [3]F {
	return [3]F{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func vecMagnitude[F scalar.Float](v [3]F) F {
	return scalar.Sqrt(vecDot(v, v))
}

// vecUnit normalizes v. Like Quaternion.Unit, a zero-length input propagates NaN
// instead of being guarded against.
func vecUnit[F scalar.Float](v [3]F) [3]F {
	return vecScale(v, 1/vecMagnitude(v))
}
