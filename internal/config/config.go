// Package config loads hole scenes from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/soypat/sdfhole/helpers/matter"
	"github.com/soypat/sdfhole/hole"
	"github.com/soypat/sdfhole/sdf"
	"github.com/soypat/sdfhole/smooth"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Hole kinds accepted in scene files.
const (
	KindHole                = "hole"
	KindSlotted             = "slotted"
	KindCountersunk         = "countersunk"
	KindCounterdrilled      = "counterdrilled"
	KindCounterboredSlotted = "counterbored_slotted"
)

// Scene is a set of holes built with a shared context.
type Scene struct {
	Context Context `toml:"context" yaml:"context"`
	// Material, when set, names a print material whose shrinkage is
	// compensated in every radius and diameter.
	Material string `toml:"material" yaml:"material"`
	Holes    []Hole `toml:"holes" yaml:"holes"`
}

// Context mirrors sdf.Context.
type Context struct {
	Eps  float64 `toml:"eps" yaml:"eps"`
	Fa   float64 `toml:"fa" yaml:"fa"`
	Fs   float64 `toml:"fs" yaml:"fs"`
	Fn   int     `toml:"fn" yaml:"fn"`
	Fn4n bool    `toml:"fn4n" yaml:"fn4n"`
}

// Vec is a position in the scene.
type Vec struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
	Z float64 `toml:"z" yaml:"z"`
}

// Profile selects the smoothing of one edge of a hole.
type Profile struct {
	// Kind is one of rough, fillet or chamfer.
	Kind string `toml:"kind" yaml:"kind"`
	// Size is the fillet radius or the chamfer skew length.
	Size float64     `toml:"size" yaml:"size"`
	Side smooth.Side `toml:"side" yaml:"side"`
}

// Hole is one hole of a scene. Which dimensions apply depends on Kind.
type Hole struct {
	Kind string `toml:"kind" yaml:"kind"`
	// Alignment defaults to top.
	Alignment hole.Alignment `toml:"alignment" yaml:"alignment"`
	Position  Vec            `toml:"position" yaml:"position"`

	Height              *float64 `toml:"height" yaml:"height"`
	Radius              *float64 `toml:"radius" yaml:"radius"`
	Diameter            *float64 `toml:"diameter" yaml:"diameter"`
	CenterToCenter      *float64 `toml:"center_to_center" yaml:"center_to_center"`
	OverallLength       *float64 `toml:"overall_length" yaml:"overall_length"`
	CountersinkRadius   *float64 `toml:"countersink_radius" yaml:"countersink_radius"`
	CountersinkDiameter *float64 `toml:"countersink_diameter" yaml:"countersink_diameter"`
	CountersinkAngle    *float64 `toml:"countersink_angle" yaml:"countersink_angle"`
	CountersinkHeight   *float64 `toml:"countersink_height" yaml:"countersink_height"`
	CounterdrillHeight  *float64 `toml:"counterdrill_height" yaml:"counterdrill_height"`
	CounterboreRadius   *float64 `toml:"counterbore_radius" yaml:"counterbore_radius"`
	CounterboreDiameter *float64 `toml:"counterbore_diameter" yaml:"counterbore_diameter"`
	CounterboreHeight   *float64 `toml:"counterbore_height" yaml:"counterbore_height"`
	CounterboreAngle    *float64 `toml:"counterbore_angle" yaml:"counterbore_angle"`

	ProfileTop    *Profile `toml:"profile_top" yaml:"profile_top"`
	ProfileBottom *Profile `toml:"profile_bottom" yaml:"profile_bottom"`
	// Nil flags take the defaults of hole.DefaultBase.
	ExtendTop      *bool `toml:"extend_top" yaml:"extend_top"`
	ExtendBottom   *bool `toml:"extend_bottom" yaml:"extend_bottom"`
	ExtendBoundary *bool `toml:"extend_boundary" yaml:"extend_boundary"`

	Fa   float64 `toml:"fa" yaml:"fa"`
	Fs   float64 `toml:"fs" yaml:"fs"`
	Fn   int     `toml:"fn" yaml:"fn"`
	Fn4n bool    `toml:"fn4n" yaml:"fn4n"`
}

// Default returns a scene with the default context and no holes.
func Default() *Scene {
	ctx := sdf.DefaultContext()
	return &Scene{
		Context: Context{Eps: ctx.Eps, Fa: ctx.Fa, Fs: ctx.Fs, Fn: ctx.Fn, Fn4n: ctx.Fn4n},
	}
}

// SDFContext returns the build context of the scene.
func (s *Scene) SDFContext() sdf.Context {
	c := s.Context
	return sdf.Context{Eps: c.Eps, Fa: c.Fa, Fs: c.Fs, Fn: c.Fn, Fn4n: c.Fn4n}
}

// Validate checks the context and that every hole can be constructed.
func (s *Scene) Validate() error {
	c := s.Context
	switch {
	case c.Eps < 0:
		return errors.New("context.eps must not be negative")
	case c.Fa <= 0 && c.Fn <= 0:
		return errors.New("context.fa must be positive when context.fn is not set")
	case c.Fs <= 0 && c.Fn <= 0:
		return errors.New("context.fs must be positive when context.fn is not set")
	case c.Fn < 0:
		return errors.New("context.fn must not be negative")
	case len(s.Holes) == 0:
		return errors.New("scene has no holes")
	}
	_, err := s.Features()
	return err
}

// Features constructs the holes of the scene in order, compensating for
// the scene's material.
func (s *Scene) Features() ([]hole.Feature, error) {
	var mat *matter.ViscousMaterial
	if s.Material != "" {
		m, err := matter.Lookup(s.Material)
		if err != nil {
			return nil, fmt.Errorf("material: %w", err)
		}
		mat = &m
	}
	features := make([]hole.Feature, len(s.Holes))
	for i, h := range s.Holes {
		f, err := h.Feature(mat)
		if err != nil {
			return nil, fmt.Errorf("holes[%d] (%s): %w", i, h.Kind, err)
		}
		features[i] = f
	}
	return features, nil
}

// Offset returns the translation applied to the hole in the scene.
func (h Hole) Offset() r3.Vec {
	return r3.Vec{X: h.Position.X, Y: h.Position.Y, Z: h.Position.Z}
}

// Feature constructs the hole. A non-nil mat scales internal dimensions.
func (h Hole) Feature(mat *matter.ViscousMaterial) (hole.Feature, error) {
	b, err := h.base()
	if err != nil {
		return nil, err
	}
	radius, diameter := h.Radius, h.Diameter
	sinkRadius, sinkDiameter := h.CountersinkRadius, h.CountersinkDiameter
	boreRadius, boreDiameter := h.CounterboreRadius, h.CounterboreDiameter
	if mat != nil {
		for _, p := range []**float64{&radius, &sinkRadius, &boreRadius} {
			*p = scaled(*p, mat.InternalRadiusScale)
		}
		for _, p := range []**float64{&diameter, &sinkDiameter, &boreDiameter} {
			*p = scaled(*p, mat.InternalDimScale)
		}
	}
	switch strings.ToLower(h.Kind) {
	case KindHole:
		return feature(hole.NewHole(b, hole.HoleParams{
			Height:   h.Height,
			Radius:   radius,
			Diameter: diameter,
		}))
	case KindSlotted:
		return feature(hole.NewSlotted(b, hole.SlottedParams{
			Height:         h.Height,
			Radius:         radius,
			Diameter:       diameter,
			CenterToCenter: h.CenterToCenter,
			OverallLength:  h.OverallLength,
		}))
	case KindCountersunk:
		return feature(hole.NewCountersunk(b, hole.CountersunkParams{
			Height:              h.Height,
			Radius:              radius,
			Diameter:            diameter,
			CountersinkRadius:   sinkRadius,
			CountersinkDiameter: sinkDiameter,
			CountersinkAngle:    h.CountersinkAngle,
			CountersinkHeight:   h.CountersinkHeight,
		}))
	case KindCounterdrilled:
		return feature(hole.NewCounterdrilled(b, hole.CounterdrilledParams{
			Height:              h.Height,
			Radius:              radius,
			Diameter:            diameter,
			CountersinkRadius:   sinkRadius,
			CountersinkDiameter: sinkDiameter,
			CountersinkAngle:    h.CountersinkAngle,
			CountersinkHeight:   h.CountersinkHeight,
			CounterdrillHeight:  h.CounterdrillHeight,
		}))
	case KindCounterboredSlotted:
		return feature(hole.NewCounterboredSlotted(b, hole.CounterboredSlottedParams{
			Height:              h.Height,
			Radius:              radius,
			Diameter:            diameter,
			CounterboreRadius:   boreRadius,
			CounterboreDiameter: boreDiameter,
			CounterboreHeight:   h.CounterboreHeight,
			CounterboreAngle:    h.CounterboreAngle,
			CenterToCenter:      h.CenterToCenter,
			OverallLength:       h.OverallLength,
		}))
	}
	return nil, fmt.Errorf("unknown hole kind %q", h.Kind)
}

// feature keeps a failed constructor from yielding a non-nil Feature.
func feature(f hole.Feature, err error) (hole.Feature, error) {
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (h Hole) base() (hole.Base, error) {
	align := h.Alignment
	if align == 0 {
		align = hole.Top
	}
	b := hole.DefaultBase(align)
	setBool(&b.ExtendTop, h.ExtendTop)
	setBool(&b.ExtendBottom, h.ExtendBottom)
	setBool(&b.ExtendBoundary, h.ExtendBoundary)
	b.Fa, b.Fs, b.Fn, b.Fn4n = h.Fa, h.Fs, h.Fn, h.Fn4n
	var err error
	if b.ProfileTop, err = h.ProfileTop.profile(); err != nil {
		return b, fmt.Errorf("profile_top: %w", err)
	}
	if b.ProfileBottom, err = h.ProfileBottom.profile(); err != nil {
		return b, fmt.Errorf("profile_bottom: %w", err)
	}
	return b, nil
}

func (p *Profile) profile() (smooth.Profile, error) {
	if p == nil {
		return smooth.Rough{}, nil
	}
	switch strings.ToLower(p.Kind) {
	case "", "rough":
		return smooth.Rough{}, nil
	case "fillet":
		return smooth.Fillet{Radius: p.Size, Side: p.Side}, nil
	case "chamfer":
		return smooth.Chamfer{SkewLength: p.Size, Side: p.Side}, nil
	}
	return nil, fmt.Errorf("unknown profile kind %q", p.Kind)
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// scaled returns f(*p). Non-positive values are left for the hole
// constructors to reject.
func scaled(p *float64, f func(float64) float64) *float64 {
	if p == nil || *p <= 0 {
		return p
	}
	return hole.Float(f(*p))
}

// LoadFile reads a scene from a .toml, .yaml or .yml file on top of the
// defaults and validates it. Unknown keys are an error.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	scene := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(scene)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse config file: unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(scene); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return scene, nil
}
