package starnavi

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// translateAffine returns Translate(x, y).
func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// scaleAffine returns Scale(sx, sy).
func scaleAffine(sx, sy float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, 0, 0}
}

// rotateAffine returns a counter-clockwise rotation by deg degrees in a
// Y-up frame.
func rotateAffine(deg float64) [6]float64 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// chainAffine multiplies matrices left to right: m[0] * m[1] * ... * m[n-1].
func chainAffine(ms ...[6]float64) [6]float64 {
	out := identityTransform
	for _, m := range ms {
		out = multiplyAffine(out, m)
	}
	return out
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// normalizeDegrees wraps a into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// polar returns the angle in degrees [0, 360) and magnitude of (x, y) in a
// Y-up frame.
func polar(x, y float64) (angle, mag float64) {
	return normalizeDegrees(math.Atan2(y, x) * 180 / math.Pi), math.Hypot(x, y)
}

// polarPoint returns the cartesian point at angle degrees and distance d.
func polarPoint(angle, d float64) Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Vec2{X: d * cos, Y: d * sin}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
