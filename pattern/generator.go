package pattern

import (
	"github.com/softglow/glowcat/vmath"
)

// Generator evaluates pattern fields over normalized coordinates. One
// generator serves one terminal size; Engine recreates it on resize.
type Generator struct {
	noise  *vmath.Noise
	width  int
	height int
	time   float64

	aspectRatio   float64
	correctAspect bool
}

// NewGenerator builds a generator for the given cell grid
func NewGenerator(width, height int) *Generator {
	return &Generator{
		noise:         vmath.NewNoise(0),
		width:         width,
		height:        height,
		aspectRatio:   0.5,
		correctAspect: true,
	}
}

// SetTime sets the animation clock for subsequent evaluations
func (g *Generator) SetTime(t float64) {
	g.time = t
}

// SetAspect configures terminal cell aspect compensation
func (g *Generator) SetAspect(correct bool, ratio float64) {
	g.correctAspect = correct
	g.aspectRatio = vmath.Clamp(ratio, 0.1, 2.0)
}

// normalize maps a cell coordinate to centered pattern space. With aspect
// correction the x axis is squeezed by the cell ratio so circles stay
// round on tall terminal cells.
func (g *Generator) normalize(x, y int) (float64, float64) {
	xn := float64(x) / float64(g.width)
	yn := float64(y) / float64(g.height)
	if g.correctAspect {
		return (xn - 0.5) * g.aspectRatio, yn - 0.5
	}
	return xn - 0.5, yn - 0.5
}

// Eval computes the pattern field value for a cell. The result is not
// yet clamped; Engine owns the final [0, 1] guarantee.
func (g *Generator) Eval(x, y int, p Params) float64 {
	xn, yn := g.normalize(x, y)

	switch params := p.(type) {
	case HorizontalParams:
		return g.horizontal(xn+0.5, params)
	case DiagonalParams:
		return g.diagonal(xn, yn, params)
	case PlasmaParams:
		return g.plasma(xn, yn, params)
	case RippleParams:
		return g.ripple(xn, yn, params)
	case WaveParams:
		return g.wave(xn, yn, params)
	case SpiralParams:
		return g.spiral(xn, yn, params)
	case CheckerboardParams:
		return g.checkerboard(xn, yn, params)
	case DiamondParams:
		return g.diamond(xn, yn, params)
	case PerlinParams:
		return g.perlin(xn, yn, params)
	case RainParams:
		return g.rain(xn, yn, params)
	case FireParams:
		return g.fire(xn, yn, params)
	case AuroraParams:
		return g.aurora(xn, yn, params)
	case KaleidoscopeParams:
		return g.kaleidoscope(xn, yn, params)
	}
	return 0
}
