package pattern

import (
	"fmt"

	"github.com/softglow/glowcat/vmath"
)

// HorizontalParams configures the horizontal scrolling gradient
type HorizontalParams struct {
	Invert bool
}

func (HorizontalParams) id() string { return "horizontal" }

func (p HorizontalParams) String() string {
	return fmt.Sprintf("invert=%t", p.Invert)
}

func init() {
	register(patternDef{
		id:   "horizontal",
		name: "Horizontal",
		desc: "Gradient scrolling horizontally across the screen",
		fields: []Field{
			{Name: "invert", Type: BoolField, Default: "false", Desc: "Reverse the scroll direction"},
		},
		defaults: func() Params { return HorizontalParams{} },
		decode: func(raw map[string]string) Params {
			return HorizontalParams{Invert: boolean(raw, "invert", false)}
		},
	})
}

func (g *Generator) horizontal(x float64, p HorizontalParams) float64 {
	v := vmath.RemEuclid(x+g.time*0.5, 1.0)
	if p.Invert {
		return 1.0 - v
	}
	return v
}
