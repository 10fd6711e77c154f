package quat

import (
	"math"

	"github.com/solarlune/quat/scalar"
)

// FromAxisAngle creates a new Quaternion rotating by the given angle (in radians) around
// the given 3D axis. The axis must already be of unit length for the result to be a unit
// Quaternion; this is not checked, and FromAxisAngle does not normalize it for you.
func FromAxisAngle[F scalar.Float](axis [3]F, angle F) Quaternion[F] {
	half := angle / 2
	return Quaternion[F]{
		W: scalar.Cos(half),
		V: vecScale(axis, scalar.Sin(half)),
	}
}

// FromEuler creates a new Quaternion from the rotations around the X, Y, and Z axes
// (in radians), applied in that order.
func FromEuler[F scalar.Float](x, y, z F) Quaternion[F] {
	sx, cx := scalar.Sin(x/2), scalar.Cos(x/2)
	sy, cy := scalar.Sin(y/2), scalar.Cos(y/2)
	sz, cz := scalar.Sin(z/2), scalar.Cos(z/2)
	return Quaternion[F]{
		W: cx*cy*cz + sx*sy*sz,
		V: [3]F{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
		},
	}
}

// RotationBetween creates the minimal-angle Quaternion rotating the direction from onto
// the direction to. Neither input needs to be normalized; RotationBetween normalizes
// both internally. Zero-length inputs have no direction and so produce a NaN result.
func RotationBetween[F scalar.Float](from, to [3]F) Quaternion[F] {

	from = vecUnit(from)
	to = vecUnit(to)

	d := vecDot(from, to)

	if d >= 1 {
		// Already pointing the same way.
		return Identity[F]()
	}

	if d < -0.999999 {
		// Antiparallel (or close enough that the construction below degenerates); rotate
		// 180° around any axis perpendicular to from. Crossing with the world X axis
		// gives one, unless from lies on X itself, in which case the world Y axis works.
		axis := vecCross([3]F{1, 0, 0}, from)
		if vecMagnitude(axis) == 0 {
			axis = vecCross([3]F{0, 1, 0}, from)
		}
		return FromAxisAngle(vecUnit(axis), F(math.Pi))
	}

	// The half-angle construction: (1 + d, from x to), normalized. Unstable as d
	// approaches -1 (the norm approaches zero), hence the branch above.
	q := Quaternion[F]{W: 1 + d, V: vecCross(from, to)}
	return q.Unit()
}

// RotateVector returns a copy of the 3D vector v, rotated by the calling Quaternion.
// The Quaternion must be a unit Quaternion for the result to be a pure rotation; this
// is not checked, and a non-unit Quaternion scales the vector as well as rotating it.
func (q Quaternion[F]) RotateVector(v [3]F) [3]F {
	return q.Mul(Quaternion[F]{V: v}).Mul(q.Conjugate()).V
}
