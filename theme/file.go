package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// themeFile is the YAML shape of a custom theme file
type themeFile struct {
	Themes []themeEntry `yaml:"themes"`
}

type themeEntry struct {
	Name   string   `yaml:"name"`
	Desc   string   `yaml:"desc"`
	Colors []Stop   `yaml:"colors"`
	Dist   string   `yaml:"dist"`
	Repeat string   `yaml:"repeat"`
	Speed  *float64 `yaml:"speed"`
	Ease   string   `yaml:"ease"`
}

// LoadFile reads custom theme definitions from a YAML file and registers
// them under the "custom" category. Existing names are overridden.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read theme file: %w", err)
	}
	return r.loadCustom(data)
}

func (r *Registry) loadCustom(data []byte) error {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse theme file: %w", err)
	}
	if len(f.Themes) == 0 {
		return fmt.Errorf("theme file defines no themes")
	}

	defs := make([]Definition, 0, len(f.Themes))
	for _, e := range f.Themes {
		d := Definition{Name: e.Name, Desc: e.Desc, Colors: e.Colors}
		if e.Name == "" {
			return fmt.Errorf("theme entry missing a name")
		}

		var err error
		if d.Dist, err = parseDistribution(e.Dist); err != nil {
			return fmt.Errorf("theme %q: %w", e.Name, err)
		}
		if d.Repeat, err = parseRepeat(e.Repeat); err != nil {
			return fmt.Errorf("theme %q: %w", e.Name, err)
		}
		if d.Ease, err = parseEasing(e.Ease); err != nil {
			return fmt.Errorf("theme %q: %w", e.Name, err)
		}
		if e.Speed != nil {
			if *e.Speed <= 0 {
				return fmt.Errorf("theme %q: speed must be positive", e.Name)
			}
			d.Speed = *e.Speed
		}

		if err := d.Validate(); err != nil {
			return err
		}
		defs = append(defs, d)
	}

	r.add("custom", defs...)
	return nil
}

func parseDistribution(s string) (Distribution, error) {
	switch s {
	case "", "even":
		return DistEven, nil
	case "front":
		return DistFront, nil
	case "back":
		return DistBack, nil
	case "center":
		return DistCenter, nil
	case "alt":
		return DistAlt, nil
	}
	return 0, fmt.Errorf("unknown distribution %q", s)
}

// parseRepeat accepts plain mode names plus the function notation
// "rotate(rate)" and "pulse(rate)".
func parseRepeat(s string) (Repeat, error) {
	switch s {
	case "", "none":
		return Repeat{Mode: RepeatNone}, nil
	case "mirror":
		return Repeat{Mode: RepeatMirror}, nil
	case "repeat":
		return Repeat{Mode: RepeatTile}, nil
	}
	for mode, name := range map[RepeatMode]string{RepeatRotate: "rotate", RepeatPulse: "pulse"} {
		prefix := name + "("
		if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, ")") {
			rate, err := strconv.ParseFloat(s[len(prefix):len(s)-1], 64)
			if err != nil {
				return Repeat{}, fmt.Errorf("invalid %s rate in %q", name, s)
			}
			return Repeat{Mode: mode, Rate: rate}, nil
		}
	}
	return Repeat{}, fmt.Errorf("unknown repeat mode %q", s)
}

func parseEasing(s string) (Easing, error) {
	switch s {
	case "", "linear":
		return EaseLinear, nil
	case "smooth":
		return EaseSmooth, nil
	case "smoother":
		return EaseSmoother, nil
	case "sine":
		return EaseSine, nil
	case "exp":
		return EaseExp, nil
	case "elastic":
		return EaseElastic, nil
	}
	return 0, fmt.Errorf("unknown easing %q", s)
}
