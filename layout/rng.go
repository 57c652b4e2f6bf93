// SPDX-License-Identifier: MIT
// File: rng.go
// Role: deterministic random streams for placement and relocation.
//
// math/rand.Rand is not goroutine-safe; every run owns its stream.

package layout

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
