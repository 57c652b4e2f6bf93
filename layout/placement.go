// SPDX-License-Identifier: MIT

package layout

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Random places every id uniformly inside the drawable area of c.
// A nil rng uses the default seed.
func Random(ids []int, c Canvas, rng *rand.Rand) Positions {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	b := c.Bounds()
	pos := make(Positions, len(ids))
	for _, id := range ids {
		pos[id] = randomIn(b, rng)
	}

	return pos
}

// Circular places ids evenly on the largest circle that fits the drawable
// area, starting at the top and going clockwise. A single id sits at the
// centre.
func Circular(ids []int, c Canvas) Positions {
	pos := make(Positions, len(ids))
	center := c.Center()
	if len(ids) == 1 {
		pos[ids[0]] = center
		return pos
	}
	size := r2.Sub(c.Bounds().Max, c.Bounds().Min)
	radius := math.Min(size.X, size.Y) / 2
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := -math.Pi/2 + float64(i)*step
		pos[id] = r2.Add(center, r2.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}

	return pos
}

func randomIn(b r2.Box, rng *rand.Rand) r2.Vec {
	return r2.Vec{
		X: b.Min.X + rng.Float64()*(b.Max.X-b.Min.X),
		Y: b.Min.Y + rng.Float64()*(b.Max.Y-b.Min.Y),
	}
}
