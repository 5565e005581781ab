package systems

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/lilypad/components"
)

// breatheAmp is the radius change of the breathing animation.
const breatheAmp = 1.1

// BlobShape computes the wobbling outline drawn for the actor.
// It is presentation only; collision always uses the plain radius.
type BlobShape struct {
	points     int
	wobble     float64
	wobbleFreq float64
	noise      opensimplex.Noise
}

// NewBlobShape creates an outline generator with points vertices whose edge
// moves by up to wobble. wobbleFreq is the radius of the noise sampling circle.
func NewBlobShape(points int, wobble, wobbleFreq float64, seed int64) *BlobShape {
	if points < 3 {
		points = 3
	}
	return &BlobShape{
		points:     points,
		wobble:     wobble,
		wobbleFreq: wobbleFreq,
		noise:      opensimplex.NewNormalized(seed),
	}
}

// Points returns the number of outline vertices.
func (s *BlobShape) Points() int {
	return s.points
}

// Outline appends the outline of a blob of radius r centred at (cx, cy) to
// dst, in increasing angle. phase animates breathing and wobble.
func (s *BlobShape) Outline(dst []components.Position, cx, cy, r, phase float64) []components.Position {
	breathe := math.Sin(phase*math.Pi) * breatheAmp
	for i := 0; i < s.points; i++ {
		a := float64(i) / float64(s.points) * 2 * math.Pi
		cos, sin := math.Cos(a), math.Sin(a)

		// Sampling on a circle keeps the seam between the last and first vertex smooth
		n := s.noise.Eval3(cos*s.wobbleFreq+100, sin*s.wobbleFreq+100, phase)
		edge := -s.wobble + n*2*s.wobble

		rr := r + breathe + edge
		dst = append(dst, components.Position{X: cx + cos*rr, Y: cy + sin*rr})
	}
	return dst
}
