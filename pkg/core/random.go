package core

import "math/rand"

// Sampling helpers for the integrator and materials. Every function takes
// an explicit *rand.Rand so workers can keep independent generators and
// tests can seed deterministically.

// RandomVec3 generates a vector with components uniform in [0, 1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{X: random.Float64(), Y: random.Float64(), Z: random.Float64()}
}

// RandomVec3Range generates a vector with components uniform in [min, max)
func RandomVec3Range(random *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		X: min + (max-min)*random.Float64(),
		Y: min + (max-min)*random.Float64(),
		Z: min + (max-min)*random.Float64(),
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit
// sphere. Rejection-sampled; candidates too short to normalize safely are
// discarded and resampled.
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(random, -1, 1)
		lenSq := p.LengthSquared()
		if lenSq > 1e-160 && lenSq <= 1.0 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in the unit disk on the XY
// plane, used for defocus (thin lens) sampling.
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
