// SPDX-License-Identifier: EPL-2.0

package doppler

import "math"

// Point is a position in the plane, in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p*k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Trajectory gives the position of the emitter at time t (seconds).
//
// Implementations must return the same Point for the same t no matter how
// many times or in which order they are evaluated.
type Trajectory interface {
	Position(t float64) Point
}

// TrajectoryFunc adapts an ordinary function to the Trajectory interface.
type TrajectoryFunc func(t float64) Point

// Position calls f(t).
func (f TrajectoryFunc) Position(t float64) Point { return f(t) }

// Circular moves around Center at a constant angular speed (rad/s).
type Circular struct {
	Center       Point
	Radius       float64
	AngularSpeed float64
	Phase        float64 // angle at t=0, radians
}

// Position implements Trajectory.
func (c Circular) Position(t float64) Point {
	theta := c.AngularSpeed*t + c.Phase
	return Point{
		X: c.Center.X + c.Radius*math.Cos(theta),
		Y: c.Center.Y + c.Radius*math.Sin(theta),
	}
}

// Period returns the time of one revolution, or 0 for a source that does not
// rotate.
func (c Circular) Period() float64 {
	if c.AngularSpeed == 0 {
		return 0
	}
	return 2 * math.Pi / math.Abs(c.AngularSpeed)
}

// Linear moves from Start at a constant Velocity (m/s per axis).
type Linear struct {
	Start    Point
	Velocity Point
}

// Position implements Trajectory.
func (l Linear) Position(t float64) Point {
	return l.Start.Add(l.Velocity.Scale(t))
}

// Stationary never moves.
type Stationary struct {
	At Point
}

// Position implements Trajectory.
func (s Stationary) Position(float64) Point { return s.At }
