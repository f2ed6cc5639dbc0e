package theme

// evenStops spreads colors evenly across [0, 1]. Colors are given as
// r, g, b triples.
func evenStops(components ...float64) []Stop {
	n := len(components) / 3
	stops := make([]Stop, n)
	for i := 0; i < n; i++ {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		stops[i] = Stop{
			R:   components[i*3],
			G:   components[i*3+1],
			B:   components[i*3+2],
			Pos: pos,
		}
	}
	return stops
}

func init() {
	registerBuiltin("default",
		Definition{
			Name: "rainbow",
			Desc: "Default rainbow gradient",
			Colors: []Stop{
				{R: 1.0, G: 0.0, B: 0.0, Pos: 0.0},
				{R: 1.0, G: 1.0, B: 0.0, Pos: 0.2},
				{R: 0.0, G: 1.0, B: 0.0, Pos: 0.4},
				{R: 0.0, G: 1.0, B: 1.0, Pos: 0.6},
				{R: 0.0, G: 0.0, B: 1.0, Pos: 0.8},
				{R: 1.0, G: 0.0, B: 1.0, Pos: 1.0},
			},
		},
	)

	registerBuiltin("space",
		Definition{
			Name: "nebula",
			Desc: "Deep purples and pinks of a stellar nursery",
			Colors: evenStops(
				0.05, 0.0, 0.15,
				0.4, 0.1, 0.5,
				0.8, 0.2, 0.6,
				1.0, 0.6, 0.8,
			),
			Ease: EaseSmooth,
		},
		Definition{
			Name: "galaxy",
			Desc: "Spiral arm blues fading into starlight",
			Colors: evenStops(
				0.0, 0.0, 0.1,
				0.1, 0.2, 0.5,
				0.4, 0.5, 0.9,
				0.9, 0.9, 1.0,
			),
		},
		Definition{
			Name: "midnight",
			Desc: "Quiet blues of the night sky",
			Colors: evenStops(
				0.0, 0.0, 0.05,
				0.05, 0.05, 0.25,
				0.1, 0.15, 0.45,
				0.3, 0.4, 0.7,
			),
			Ease: EaseSmooth,
		},
		Definition{
			Name: "starlight",
			Desc: "Cold white points on indigo",
			Colors: evenStops(
				0.05, 0.05, 0.15,
				0.3, 0.35, 0.55,
				0.7, 0.75, 0.9,
				1.0, 1.0, 1.0,
			),
			Dist: DistFront,
		},
		Definition{
			Name: "mars",
			Desc: "Rust and dust of the red planet",
			Colors: evenStops(
				0.2, 0.05, 0.0,
				0.55, 0.2, 0.1,
				0.85, 0.45, 0.25,
				1.0, 0.75, 0.55,
			),
		},
	)

	registerBuiltin("tech",
		Definition{
			Name: "matrix",
			Desc: "Phosphor green terminal rain",
			Colors: evenStops(
				0.0, 0.05, 0.0,
				0.0, 0.3, 0.05,
				0.1, 0.7, 0.2,
				0.6, 1.0, 0.6,
			),
			Dist: DistFront,
		},
		Definition{
			Name: "cyberpunk",
			Desc: "Hot pink and electric blue cityscape",
			Colors: evenStops(
				0.05, 0.0, 0.15,
				0.6, 0.0, 0.6,
				1.0, 0.1, 0.6,
				0.0, 0.9, 1.0,
			),
		},
		Definition{
			Name: "terminal",
			Desc: "Classic amber monochrome",
			Colors: evenStops(
				0.1, 0.05, 0.0,
				0.5, 0.3, 0.0,
				1.0, 0.7, 0.1,
			),
		},
		Definition{
			Name: "circuit",
			Desc: "Copper traces on green solder mask",
			Colors: evenStops(
				0.0, 0.15, 0.1,
				0.05, 0.4, 0.25,
				0.8, 0.5, 0.2,
				1.0, 0.85, 0.5,
			),
		},
	)

	registerBuiltin("nature",
		Definition{
			Name: "ocean",
			Desc: "Deep sea blues rising to surf",
			Colors: evenStops(
				0.0, 0.05, 0.2,
				0.0, 0.25, 0.5,
				0.1, 0.5, 0.7,
				0.6, 0.9, 0.95,
			),
			Ease: EaseSmooth,
		},
		Definition{
			Name: "forest",
			Desc: "Mossy greens under a leaf canopy",
			Colors: evenStops(
				0.05, 0.1, 0.02,
				0.1, 0.3, 0.1,
				0.3, 0.55, 0.2,
				0.7, 0.85, 0.4,
			),
		},
		Definition{
			Name: "autumn",
			Desc: "Falling leaves in red and gold",
			Colors: evenStops(
				0.3, 0.05, 0.0,
				0.7, 0.2, 0.05,
				0.9, 0.5, 0.1,
				1.0, 0.85, 0.4,
			),
		},
		Definition{
			Name: "aurora",
			Desc: "Northern lights over a dark horizon",
			Colors: evenStops(
				0.0, 0.05, 0.1,
				0.0, 0.5, 0.4,
				0.2, 0.9, 0.5,
				0.6, 0.4, 0.9,
			),
			Repeat: Repeat{Mode: RepeatRotate, Rate: 0.1},
			Ease:   EaseSmooth,
		},
		Definition{
			Name: "desert",
			Desc: "Sun-bleached sand and terracotta",
			Colors: evenStops(
				0.45, 0.25, 0.1,
				0.75, 0.5, 0.25,
				0.95, 0.8, 0.5,
				1.0, 0.95, 0.8,
			),
		},
	)

	registerBuiltin("aesthetic",
		Definition{
			Name: "neon",
			Desc: "Saturated signs against the dark",
			Colors: evenStops(
				1.0, 0.0, 0.6,
				0.6, 0.0, 1.0,
				0.0, 0.6, 1.0,
				0.0, 1.0, 0.8,
			),
		},
		Definition{
			Name: "pastel",
			Desc: "Soft candy tones",
			Colors: evenStops(
				1.0, 0.8, 0.85,
				0.85, 0.8, 1.0,
				0.8, 0.95, 1.0,
				0.85, 1.0, 0.85,
			),
			Ease: EaseSmooth,
		},
		Definition{
			Name: "vaporwave",
			Desc: "Sunset gradient straight off a cassette sleeve",
			Colors: evenStops(
				0.15, 0.0, 0.3,
				0.6, 0.1, 0.7,
				1.0, 0.4, 0.7,
				1.0, 0.8, 0.5,
			),
		},
		Definition{
			Name: "retrowave",
			Desc: "Grid horizon magenta and cyan",
			Colors: evenStops(
				0.1, 0.0, 0.2,
				0.7, 0.0, 0.5,
				1.0, 0.3, 0.3,
				1.0, 0.9, 0.2,
			),
		},
	)

	registerBuiltin("mood",
		Definition{
			Name: "warm",
			Desc: "Candlelight ambers and reds",
			Colors: evenStops(
				0.25, 0.05, 0.0,
				0.6, 0.2, 0.05,
				0.9, 0.5, 0.15,
				1.0, 0.8, 0.45,
			),
			Ease: EaseSmooth,
		},
		Definition{
			Name: "calm",
			Desc: "Muted sea glass and fog",
			Colors: evenStops(
				0.3, 0.4, 0.45,
				0.5, 0.65, 0.65,
				0.7, 0.85, 0.8,
				0.9, 0.95, 0.9,
			),
		},
		Definition{
			Name: "melancholy",
			Desc: "Grey blues for a rainy window",
			Colors: evenStops(
				0.1, 0.1, 0.2,
				0.25, 0.3, 0.45,
				0.45, 0.5, 0.6,
				0.7, 0.7, 0.75,
			),
		},
		Definition{
			Name: "energetic",
			Desc: "High-saturation reds and yellows",
			Colors: evenStops(
				0.9, 0.1, 0.1,
				1.0, 0.4, 0.0,
				1.0, 0.75, 0.0,
				1.0, 1.0, 0.3,
			),
			Dist: DistBack,
		},
	)

	registerBuiltin("party",
		Definition{
			Name: "disco",
			Desc: "Mirror ball sweep",
			Colors: evenStops(
				1.0, 0.0, 0.5,
				0.5, 0.0, 1.0,
				0.0, 0.8, 1.0,
				1.0, 0.9, 0.0,
			),
			Repeat: Repeat{Mode: RepeatRotate, Rate: 0.5},
		},
		Definition{
			Name: "festival",
			Desc: "Stage lights cycling through hot hues",
			Colors: evenStops(
				1.0, 0.2, 0.2,
				1.0, 0.6, 0.0,
				0.2, 1.0, 0.4,
				0.2, 0.4, 1.0,
			),
			Repeat: Repeat{Mode: RepeatPulse, Rate: 0.3},
		},
		Definition{
			Name: "candy",
			Desc: "Sugar rush pinks and mints",
			Colors: evenStops(
				1.0, 0.4, 0.7,
				1.0, 0.7, 0.85,
				0.7, 1.0, 0.9,
				0.4, 0.9, 0.8,
			),
		},
	)

	registerBuiltin("abstract",
		Definition{
			Name: "heatmap",
			Desc: "Cold blue through white heat",
			Colors: evenStops(
				0.0, 0.0, 0.3,
				0.4, 0.0, 0.5,
				0.9, 0.2, 0.1,
				1.0, 0.8, 0.2,
				1.0, 1.0, 0.9,
			),
		},
		Definition{
			Name: "spectrum",
			Desc: "Evenly spaced hue sweep",
			Colors: evenStops(
				1.0, 0.0, 0.0,
				1.0, 0.5, 0.0,
				1.0, 1.0, 0.0,
				0.0, 1.0, 0.0,
				0.0, 0.5, 1.0,
				0.5, 0.0, 1.0,
			),
			Repeat: Repeat{Mode: RepeatMirror},
		},
		Definition{
			Name: "duotone",
			Desc: "Two-ink print effect",
			Colors: evenStops(
				0.1, 0.1, 0.3,
				1.0, 0.85, 0.4,
			),
			Ease: EaseSmoother,
		},
		Definition{
			Name: "glacier",
			Desc: "Compressed ice blues",
			Colors: evenStops(
				0.0, 0.1, 0.25,
				0.1, 0.35, 0.55,
				0.4, 0.7, 0.85,
				0.85, 0.95, 1.0,
			),
		},
		Definition{
			Name: "ember",
			Desc: "Dying coals under ash",
			Colors: evenStops(
				0.05, 0.02, 0.02,
				0.35, 0.05, 0.0,
				0.8, 0.25, 0.0,
				1.0, 0.6, 0.1,
			),
			Dist: DistFront,
		},
	)

	registerBuiltin("pride",
		Definition{
			Name: "pride",
			Desc: "Six-stripe pride flag",
			Colors: evenStops(
				0.9, 0.0, 0.0,
				1.0, 0.55, 0.0,
				1.0, 0.95, 0.0,
				0.0, 0.5, 0.15,
				0.0, 0.3, 1.0,
				0.45, 0.15, 0.5,
			),
		},
		Definition{
			Name: "trans",
			Desc: "Trans flag blues, pinks, and white",
			Colors: evenStops(
				0.35, 0.8, 0.98,
				0.96, 0.65, 0.72,
				1.0, 1.0, 1.0,
				0.96, 0.65, 0.72,
				0.35, 0.8, 0.98,
			),
		},
		Definition{
			Name: "bi",
			Desc: "Bi flag magenta through blue",
			Colors: evenStops(
				0.84, 0.0, 0.44,
				0.61, 0.31, 0.59,
				0.0, 0.22, 0.66,
			),
		},
		Definition{
			Name: "pan",
			Desc: "Pan flag pink, gold, and cyan",
			Colors: evenStops(
				1.0, 0.13, 0.55,
				1.0, 0.85, 0.0,
				0.13, 0.69, 1.0,
			),
		},
	)

	registerBuiltin("theory",
		Definition{
			Name: "complementary",
			Desc: "Orange against deep blue",
			Colors: evenStops(
				0.0, 0.2, 0.6,
				0.5, 0.5, 0.5,
				1.0, 0.5, 0.0,
			),
		},
		Definition{
			Name: "triadic",
			Desc: "Three hues spaced around the wheel",
			Colors: evenStops(
				0.9, 0.1, 0.2,
				0.1, 0.7, 0.3,
				0.2, 0.3, 0.9,
			),
		},
		Definition{
			Name: "analogous",
			Desc: "Neighboring hues from teal to violet",
			Colors: evenStops(
				0.0, 0.7, 0.6,
				0.0, 0.45, 0.8,
				0.3, 0.25, 0.85,
				0.55, 0.2, 0.8,
			),
		},
	)
}
