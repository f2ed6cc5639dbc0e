package pattern

import (
	"fmt"
)

// Params is the closed set of per-pattern parameter structs. Every
// implementation lives in this package; the unexported method keeps the
// union sealed so a switch over concrete types is exhaustive.
type Params interface {
	fmt.Stringer
	id() string
}

// CommonParams apply to every pattern kind
type CommonParams struct {
	// Frequency is the base frequency of the pattern (0.1-10.0)
	Frequency float64
	// Amplitude is the pattern intensity (0.1-2.0)
	Amplitude float64
	// Speed scales animation time (0.0-1.0)
	Speed float64
	// CorrectAspect compensates for tall terminal cells
	CorrectAspect bool
	// AspectRatio is the character cell width/height ratio
	AspectRatio float64
	// ThemeName selects the gradient palette
	ThemeName string
}

// DefaultCommon returns the common parameter defaults
func DefaultCommon() CommonParams {
	return CommonParams{
		Frequency:     1.0,
		Amplitude:     1.0,
		Speed:         1.0,
		CorrectAspect: true,
		AspectRatio:   0.5,
	}
}

// Config is a complete pattern configuration
type Config struct {
	Common CommonParams
	Params Params
}

// DefaultConfig pairs default common parameters with the given pattern
// parameters.
func DefaultConfig(p Params) Config {
	return Config{Common: DefaultCommon(), Params: p}
}
