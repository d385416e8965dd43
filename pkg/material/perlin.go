package material

import (
	"math"
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates smooth gradient noise over 3D space using a permuted
// lattice of random unit-range vectors. The lattice size must be a power
// of two so coordinates can be folded with a mask.
type Perlin struct {
	randVec []core.Vec3
	permX   []int
	permY   []int
	permZ   []int
}

// NewPerlin creates a Perlin noise generator seeded from random
func NewPerlin(random *rand.Rand) *Perlin {
	randVec := make([]core.Vec3, perlinPointCount)
	for i := range randVec {
		randVec[i] = core.RandomVec3Range(random, -1, 1)
	}
	return &Perlin{
		randVec: randVec,
		permX:   perlinGeneratePerm(random),
		permY:   perlinGeneratePerm(random),
		permZ:   perlinGeneratePerm(random),
	}
}

func perlinGeneratePerm(random *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// Noise returns smooth noise in roughly [-1, 1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVec[p.permX[(i+di)&(perlinPointCount-1)]^
					p.permY[(j+dj)&(perlinPointCount-1)]^
					p.permZ[(k+dk)&(perlinPointCount-1)]]
			}
		}
	}

	return perlinInterp(&c, u, v, w)
}

// perlinInterp performs hermitian-smoothed trilinear interpolation of the
// lattice gradients against the offset weight vectors.
func perlinInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums octaves of noise with halving weights and doubling
// frequency, returning the absolute accumulated value.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	tempPoint := point
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(tempPoint)
		weight *= 0.5
		tempPoint = tempPoint.Multiply(2)
	}
	return math.Abs(accum)
}

// NoiseTexture produces a marble-like pattern by modulating a sine along Z
// with Perlin turbulence.
type NoiseTexture struct {
	noise *Perlin
	scale float64
}

// NewNoiseTexture creates a noise texture with the given frequency scale
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(random), scale: scale}
}

// Value returns the marble color at the given point
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	s := 1.0 + math.Sin(n.scale*point.Z+10.0*n.noise.Turbulence(point, 7))
	return core.NewVec3(0.5, 0.5, 0.5).Multiply(s)
}
