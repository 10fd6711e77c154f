// quat is a small quaternion math library for representing and composing 3D rotations.
// The Quaternion type is generic over the floating-point type used for its components,
// so the same implementation serves both float32 and float64 consumers. All values are
// plain value types; functions return modified copies rather than mutating in place.
package quat

import (
	"github.com/solarlune/quat/scalar"
)

// Quaternion represents a rotation or orientation in 3D space as a scalar part W and a
// 3-dimensional vector part V. A Quaternion with W² + V·V == 1 (a unit quaternion)
// represents a valid rotation; anything else is a free 4-vector, which is what the
// intermediate results of sums and products are.
// Quaternions seem to be most efficient when copied (so try not to store pointers to them
// if possible, as dereferencing pointers can be more inefficient than directly acting on
// data, and storing pointers moves variables to heap).
type Quaternion[F scalar.Float] struct {
	W F    // The scalar (real) part of the Quaternion
	V [3]F // The vector (imaginary) part of the Quaternion
}

// New creates a new Quaternion from the scalar part w and the vector part components
// x, y, and z.
func New[F scalar.Float](w, x, y, z F) Quaternion[F] {
	return Quaternion[F]{W: w, V: [3]F{x, y, z}}
}

// Identity returns the identity Quaternion (1, [0, 0, 0]), representing "no rotation".
// It is the identity under Mul: q.Mul(Identity()) == Identity().Mul(q) == q.
func Identity[F scalar.Float]() Quaternion[F] {
	return Quaternion[F]{W: 1}
}

// Add returns a copy of the calling Quaternion, added together component-wise with the
// other Quaternion provided.
func (q Quaternion[F]) Add(other Quaternion[F]) Quaternion[F] {
	q.W += other.W
	q.V[0] += other.V[0]
	q.V[1] += other.V[1]
	q.V[2] += other.V[2]
	return q
}

// Scale returns a copy of the calling Quaternion with all four components multiplied by
// the scalar t.
func (q Quaternion[F]) Scale(t F) Quaternion[F] {
	q.W *= t
	q.V[0] *= t
	q.V[1] *= t
	q.V[2] *= t
	return q
}

// Dot returns the 4-vector dot product of the calling Quaternion and the other
// Quaternion provided.
func (q Quaternion[F]) Dot(other Quaternion[F]) F {
	return q.W*other.W + vecDot(q.V, other.V)
}

// Mul returns the Hamilton product of the calling Quaternion and the other Quaternion
// provided. This composes the two rotations, applying the calling Quaternion's rotation
// last. Note that the Hamilton product is not commutative: q.Mul(other) does not
// generally equal other.Mul(q).
func (q Quaternion[F]) Mul(other Quaternion[F]) Quaternion[F] {
	return Quaternion[F]{
		W: q.W*other.W - vecDot(q.V, other.V),
		V: vecAdd(vecAdd(vecScale(other.V, q.W), vecScale(q.V, other.W)), vecCross(q.V, other.V)),
	}
}

// Conjugate returns a copy of the calling Quaternion with the vector part negated. For a
// unit Quaternion, the conjugate is also the inverse: q.Mul(q.Conjugate()) is the
// identity (up to floating-point tolerance).
func (q Quaternion[F]) Conjugate() Quaternion[F] {
	q.V[0] = -q.V[0]
	q.V[1] = -q.V[1]
	q.V[2] = -q.V[2]
	return q
}

// Magnitude returns the length of the Quaternion treated as a 4-vector.
func (q Quaternion[F]) Magnitude() F {
	return scalar.Sqrt(q.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the Quaternion; this is faster than
// Magnitude() as it avoids the square root. Equal to q.Dot(q).
func (q Quaternion[F]) MagnitudeSquared() F {
	return q.W*q.W + vecDot(q.V, q.V)
}

// Unit returns a copy of the Quaternion, normalized (set to be of unit length). A
// zero Quaternion has no direction to preserve, so normalizing it yields NaN
// components rather than an error.
func (q Quaternion[F]) Unit() Quaternion[F] {
	return q.Scale(1 / q.Magnitude())
}
