package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownPattern is returned for ids not present in the registry
var ErrUnknownPattern = errors.New("unknown pattern")

// FieldType discriminates how a schema field is validated
type FieldType int

const (
	// NumberField parses as float64 and is range checked against Min/Max
	NumberField FieldType = iota
	// BoolField accepts exactly "true" or "false"
	BoolField
	// EnumField accepts one of Options verbatim
	EnumField
)

// Field describes a single pattern parameter. The schema table is the
// single source of truth for validation; decoding hooks only read values
// that already passed it.
type Field struct {
	Name    string
	Type    FieldType
	Min     float64
	Max     float64
	Default string
	Options []string
	Desc    string
}

func (f Field) check(v string) error {
	switch f.Type {
	case NumberField:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parameter %s: %q is not a number", f.Name, v)
		}
		if n < f.Min || n > f.Max {
			return fmt.Errorf("parameter %s: %v out of range [%v, %v]", f.Name, n, f.Min, f.Max)
		}
	case BoolField:
		if v != "true" && v != "false" {
			return fmt.Errorf("parameter %s: %q is not a boolean", f.Name, v)
		}
	case EnumField:
		for _, o := range f.Options {
			if v == o {
				return nil
			}
		}
		return fmt.Errorf("parameter %s: %q is not one of %s", f.Name, v, strings.Join(f.Options, "/"))
	}
	return nil
}

// patternDef ties a pattern id to its schema and decode hook. Adding a
// pattern means one def plus one generator method.
type patternDef struct {
	id     string
	name   string
	desc   string
	fields []Field

	// defaults returns the zero-configuration params value
	defaults func() Params
	// decode builds typed params from validated raw strings
	decode func(raw map[string]string) Params
}

var builtins []patternDef

func register(def patternDef) {
	builtins = append(builtins, def)
}

// Metadata describes a registered pattern for listings and help output
type Metadata struct {
	ID          string
	Name        string
	Description string
	Fields      []Field
}

// Registry holds the pattern schema table. All lookups are read-only
// after construction.
type Registry struct {
	defs  map[string]patternDef
	order []string
}

// NewRegistry returns a registry populated with every built-in pattern
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]patternDef, len(builtins))}
	for _, def := range builtins {
		r.defs[def.id] = def
		r.order = append(r.order, def.id)
	}
	sort.Strings(r.order)
	return r
}

// List returns all pattern ids in sorted order
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Describe returns metadata for a pattern id
func (r *Registry) Describe(id string) (Metadata, error) {
	def, ok := r.defs[id]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %q", ErrUnknownPattern, id)
	}
	fields := make([]Field, len(def.fields))
	copy(fields, def.fields)
	return Metadata{ID: def.id, Name: def.name, Description: def.desc, Fields: fields}, nil
}

// Default returns the default parameters for a pattern id
func (r *Registry) Default(id string) (Params, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, id)
	}
	return def.defaults(), nil
}

// Validate checks a "k=v,k=v" parameter string without building params.
// Unknown keys, malformed pairs, and out-of-range values are errors.
func (r *Registry) Validate(id, s string) error {
	def, ok := r.defs[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPattern, id)
	}
	_, err := parseFields(def.fields, s)
	if err != nil {
		return fmt.Errorf("pattern %q: %w", id, err)
	}
	return nil
}

// Parse builds typed parameters from a "k=v,k=v" string. Missing keys
// keep their schema defaults; validation never partially applies.
func (r *Registry) Parse(id, s string) (Params, error) {
	def, ok := r.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, id)
	}
	raw, err := parseFields(def.fields, s)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", id, err)
	}
	return def.decode(raw), nil
}

// Format renders params back to the canonical "k=v,k=v" string.
// Parse(Format(p)) reproduces p.
func (r *Registry) Format(p Params) string {
	return p.String()
}

// ID reports the registry id of a params value
func ID(p Params) string {
	return p.id()
}

func parseFields(fields []Field, s string) (map[string]string, error) {
	raw := make(map[string]string)
	s = strings.TrimSpace(s)
	if s == "" {
		return raw, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q must be in key=value form", part)
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		f := fieldByName(fields, k)
		if f == nil {
			return nil, fmt.Errorf("invalid parameter name: %s", k)
		}
		if err := f.check(v); err != nil {
			return nil, err
		}
		raw[k] = v
	}
	return raw, nil
}

func fieldByName(fields []Field, name string) *Field {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

// Decode helpers. Values were already validated against the schema, so
// conversion cannot fail here.

func num(raw map[string]string, key string, def float64) float64 {
	if s, ok := raw[key]; ok {
		v, _ := strconv.ParseFloat(s, 64)
		return v
	}
	return def
}

func integer(raw map[string]string, key string, def int) int {
	if s, ok := raw[key]; ok {
		v, _ := strconv.ParseFloat(s, 64)
		return int(v)
	}
	return def
}

func boolean(raw map[string]string, key string, def bool) bool {
	if s, ok := raw[key]; ok {
		return s == "true"
	}
	return def
}

func enum(raw map[string]string, key, def string) string {
	if s, ok := raw[key]; ok {
		return s
	}
	return def
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
