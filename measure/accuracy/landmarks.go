package accuracy

import "math"

// Landmark is an angle with a known exact cosine.
type Landmark struct {
	Name string
	X    float64
	Want float64
}

// Landmarks returns the angles whose cosines every approximation is
// checked against.
func Landmarks() []Landmark {
	return []Landmark{
		{"0", 0, 1},
		{"pi/6", math.Pi / 6, math.Sqrt(3) / 2},
		{"pi/4", math.Pi / 4, math.Sqrt2 / 2},
		{"pi/3", math.Pi / 3, 0.5},
		{"pi/2", math.Pi / 2, 0},
		{"pi", math.Pi, -1},
		{"3pi/2", 3 * math.Pi / 2, 0},
		{"2pi", 2 * math.Pi, 1},
	}
}

// LandmarkFunc is a reference that returns the exact cosine at every
// landmark angle and math.Cos elsewhere.
func LandmarkFunc(x float64) float64 {
	for _, lm := range Landmarks() {
		if lm.X == x {
			return lm.Want
		}
	}

	return math.Cos(x)
}

// Inputs returns the X of every landmark in table order.
func Inputs(lms []Landmark) []float64 {
	xs := make([]float64, len(lms))
	for i, lm := range lms {
		xs[i] = lm.X
	}

	return xs
}
