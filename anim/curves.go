// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"math"
)

// Curve maps linear progress in [0, 1] to eased progress. Curves
// start at 0 and end at 1 but may overshoot in between.
type Curve func(t float32) float32

// Linear returns progress unchanged.
func Linear(t float32) float32 {
	return t
}

var (
	// EaseIn starts slowly and accelerates.
	EaseIn = CubicBezier(0.42, 0, 1, 1)
	// EaseOut starts quickly and decelerates.
	EaseOut = CubicBezier(0, 0, 0.58, 1)
	// EaseInOut starts and ends slowly.
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier returns the easing curve with control points (x1, y1) and
// (x2, y2), like CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float32) Curve {
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Solve x(u) = t with Newton-Raphson, then bisection if the
		// derivative vanishes.
		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if abs(x) < 1e-6 {
				return bezier(y1, y2, u)
			}
			dx := bezierSlope(x1, x2, u)
			if abs(dx) < 1e-6 {
				break
			}
			u -= x / dx
		}
		lo, hi := float32(0), float32(1)
		u = t
		for i := 0; i < 32; i++ {
			x := bezier(x1, x2, u)
			if abs(x-t) < 1e-6 {
				break
			}
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// Spring returns an under-damped spring curve. Damping is the damping
// ratio in (0, 1]; lower values oscillate more.
func Spring(damping float32) Curve {
	zeta := float64(damping)
	if zeta < 0.05 {
		zeta = 0.05
	}
	if zeta > 1 {
		zeta = 1
	}
	const omega = 12.0
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := float64(t)
		if zeta >= 1 {
			return float32(1 - (1+omega*x)*math.Exp(-omega*x))
		}
		wd := omega * math.Sqrt(1-zeta*zeta)
		env := math.Exp(-zeta * omega * x)
		return float32(1 - env*(math.Cos(wd*x)+zeta*omega/wd*math.Sin(wd*x)))
	}
}

// Keyframes returns a function interpolating linearly between values
// spaced evenly over [0, 1].
func Keyframes(values ...float32) func(t float32) float32 {
	return func(t float32) float32 {
		switch n := len(values); {
		case n == 0:
			return 0
		case n == 1 || t <= 0:
			return values[0]
		case t >= 1:
			return values[n-1]
		default:
			pos := t * float32(n-1)
			i := int(pos)
			return Float(values[i], values[i+1], pos-float32(i))
		}
	}
}

func bezier(p1, p2, u float32) float32 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float32) float32 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
