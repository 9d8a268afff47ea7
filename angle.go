package sketch

import "math"

// normAngle normalizes an angle in radians to [0, 2π).
func normAngle(th float64) float64 {
	th = math.Mod(th, 2*math.Pi)
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// ccwSweep returns the counter-clockwise sweep from angle 'from' to angle
// 'to', in [0, 2π).
func ccwSweep(from, to float64) float64 {
	return normAngle(to - from)
}

// angleInSweep reports whether th lies on the counter-clockwise sweep of the
// given extent starting at start. Both endpoints are included.
func angleInSweep(th, start, sweep float64) bool {
	return ccwSweep(start, th) <= sweep
}

// oppositeAngles reports whether the two angles point in opposite directions
// within tol radians.
func oppositeAngles(a, b, tol float64) bool {
	return math.Abs(normAngle(a-b)-math.Pi) <= tol
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
