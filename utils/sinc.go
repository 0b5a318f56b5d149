// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Sinc is the normalized sinc function sin(pi*x)/(pi*x).
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Blackman evaluates the Blackman window at position x in [-1, 1].
// Outside that range the window is zero.
func Blackman(x float64) float64 {
	if x < -1 || x > 1 {
		return 0
	}
	return 0.42 + 0.5*math.Cos(math.Pi*x) + 0.08*math.Cos(2*math.Pi*x)
}
