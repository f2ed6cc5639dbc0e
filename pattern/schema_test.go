package pattern

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistryListsAllPatterns(t *testing.T) {
	r := NewRegistry()
	ids := r.List()
	want := []string{
		"aurora", "checkerboard", "diagonal", "diamond", "fire",
		"horizontal", "kaleidoscope", "perlin", "plasma", "rain",
		"ripple", "spiral", "wave",
	}
	if len(ids) != len(want) {
		t.Fatalf("List() returned %d ids, want %d: %v", len(ids), len(want), ids)
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("List()[%d] = %q, want %q", i, ids[i], id)
		}
	}
}

func TestUnknownPatternID(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Parse("vortex", ""); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Parse(vortex) error = %v, want ErrUnknownPattern", err)
	}
	if _, err := r.Default("vortex"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Default(vortex) error = %v, want ErrUnknownPattern", err)
	}
	if _, err := r.Describe("vortex"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("Describe(vortex) error = %v, want ErrUnknownPattern", err)
	}
}

func TestParseOutOfRange(t *testing.T) {
	r := NewRegistry()
	_, err := r.Parse("plasma", "complexity=11")
	if err == nil {
		t.Fatal("complexity=11 must fail, range is 1-10")
	}
	if !strings.Contains(err.Error(), "complexity") {
		t.Errorf("error should name the offending parameter: %v", err)
	}
}

func TestParseBoundaryValuesAccepted(t *testing.T) {
	r := NewRegistry()
	for _, s := range []string{"complexity=1", "complexity=10", "scale=0.1", "scale=5"} {
		if _, err := r.Parse("plasma", s); err != nil {
			t.Errorf("Parse(plasma, %q) failed: %v", s, err)
		}
	}
}

func TestParseUnknownKey(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Parse("ripple", "wobble=3"); err == nil {
		t.Fatal("unknown key must be rejected")
	}
}

func TestParseMalformedPair(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Parse("wave", "amplitude"); err == nil {
		t.Fatal("pair without '=' must be rejected")
	}
}

func TestParseBoolStrictness(t *testing.T) {
	r := NewRegistry()
	for _, bad := range []string{"invert=1", "invert=yes", "invert=True", "invert=TRUE"} {
		if _, err := r.Parse("horizontal", bad); err == nil {
			t.Errorf("Parse(horizontal, %q) must fail, booleans are true/false only", bad)
		}
	}
	p, err := r.Parse("horizontal", "invert=true")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !p.(HorizontalParams).Invert {
		t.Error("invert=true not applied")
	}
}

func TestParseEnumStrictness(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Parse("plasma", "blend_mode=average"); err == nil {
		t.Fatal("blend_mode=average must be rejected")
	}
	if _, err := r.Parse("diamond", "mode=Zoom"); err == nil {
		t.Fatal("enum matching is case sensitive")
	}
}

func TestParsePartialAssignmentKeepsDefaults(t *testing.T) {
	r := NewRegistry()
	p, err := r.Parse("ripple", "wavelength=2.5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	rp := p.(RippleParams)
	if rp.Wavelength != 2.5 {
		t.Errorf("Wavelength = %v, want 2.5", rp.Wavelength)
	}
	if rp.CenterX != 0.5 || rp.Damping != 0.5 || rp.Frequency != 1 {
		t.Errorf("unset fields must keep defaults, got %+v", rp)
	}
}

func TestParseWhitespaceAndEmptyParts(t *testing.T) {
	r := NewRegistry()
	p, err := r.Parse("diagonal", " angle = 90 , , frequency=2 ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	dp := p.(DiagonalParams)
	if dp.Angle != 90 || dp.Frequency != 2 {
		t.Errorf("got %+v, want angle=90 frequency=2", dp)
	}
}

func TestParseEmptyStringGivesDefaults(t *testing.T) {
	r := NewRegistry()
	for _, id := range r.List() {
		p, err := r.Parse(id, "")
		if err != nil {
			t.Fatalf("Parse(%s, \"\") failed: %v", id, err)
		}
		def, _ := r.Default(id)
		if p.String() != def.String() {
			t.Errorf("%s: Parse(\"\") = %v, Default = %v", id, p, def)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	r := NewRegistry()
	for _, id := range r.List() {
		def, err := r.Default(id)
		if err != nil {
			t.Fatalf("Default(%s) failed: %v", id, err)
		}
		s := r.Format(def)
		back, err := r.Parse(id, s)
		if err != nil {
			t.Fatalf("Parse(%s, %q) failed: %v", id, s, err)
		}
		if back.String() != s {
			t.Errorf("%s: round trip %q became %q", id, s, back.String())
		}
	}
}

func TestValidateMatchesParse(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		id, s string
		ok    bool
	}{
		{"fire", "turbulence=0.7,wind=false", true},
		{"fire", "turbulence=1.5", false},
		{"kaleidoscope", "segments=12", true},
		{"kaleidoscope", "segments=13", false},
		{"aurora", "layers=5,spread=0.9", true},
		{"rain", "glitch=maybe", false},
	}
	for _, c := range cases {
		verr := r.Validate(c.id, c.s)
		_, perr := r.Parse(c.id, c.s)
		if (verr == nil) != c.ok {
			t.Errorf("Validate(%s, %q) = %v, want ok=%v", c.id, c.s, verr, c.ok)
		}
		if (verr == nil) != (perr == nil) {
			t.Errorf("Validate and Parse disagree for (%s, %q): %v vs %v", c.id, c.s, verr, perr)
		}
	}
}

func TestDescribeExposesSchema(t *testing.T) {
	r := NewRegistry()
	md, err := r.Describe("plasma")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if md.Name != "Plasma" || len(md.Fields) != 4 {
		t.Errorf("unexpected metadata: %+v", md)
	}
	var blend *Field
	for i := range md.Fields {
		if md.Fields[i].Name == "blend_mode" {
			blend = &md.Fields[i]
		}
	}
	if blend == nil || blend.Type != EnumField || len(blend.Options) != 3 {
		t.Errorf("blend_mode field wrong: %+v", blend)
	}
}
