package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/animgroup/animate"
	"gopkg.in/yaml.v3"
)

var ErrInvalidColor = errors.New("prefabs: invalid color")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ScreenSpec describes one animated screen.
type ScreenSpec struct {
	Name                string         `yaml:"name"`
	AnimateOnBackButton *bool          `yaml:"animate_on_back_button"`
	DelayOnStart        bool           `yaml:"delay_on_start"`
	DefaultDelayMS      *int           `yaml:"default_delay_ms"`
	DurationsMS         DurationsSpec  `yaml:"durations_ms"`
	BackOverridesMS     map[string]int `yaml:"back_overrides_ms"`
	// TopOffset and BottomOffset are tengo sources, or names of files under
	// scripts/, that assign `offset`.
	TopOffset    string       `yaml:"top_offset"`
	BottomOffset string       `yaml:"bottom_offset"`
	Entities     []EntitySpec `yaml:"entities"`
}

// DurationsSpec holds default durations in milliseconds. Missing values keep
// the library default.
type DurationsSpec struct {
	SlideFromTop    *int `yaml:"slide_from_top"`
	SlideFromBottom *int `yaml:"slide_from_bottom"`
	Alpha           *int `yaml:"alpha"`
}

type EntitySpec struct {
	Name    string     `yaml:"name"`
	Variant string     `yaml:"variant"`
	Rect    RectSpec   `yaml:"rect"`
	Fill    *YAMLColor `yaml:"fill"`
	Label   string     `yaml:"label"`
	Layer   int        `yaml:"layer"`
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Anchor string  `yaml:"anchor"`
}

func LoadScreenSpec(name string) (*ScreenSpec, error) {
	spec, err := LoadSpec[ScreenSpec](name)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(cleanPrefabPath(name), ".yaml")
	}
	return &spec, nil
}

// Durations merges the spec over base.
func (d DurationsSpec) Durations(base animate.Durations) animate.Durations {
	if d.SlideFromTop != nil {
		base.SlideFromTop = ms(*d.SlideFromTop)
	}
	if d.SlideFromBottom != nil {
		base.SlideFromBottom = ms(*d.SlideFromBottom)
	}
	if d.Alpha != nil {
		base.Alpha = ms(*d.Alpha)
	}
	return base
}

// BackOverrides parses back_overrides_ms.
func (s *ScreenSpec) BackOverrides() (animate.Overrides, error) {
	if len(s.BackOverridesMS) == 0 {
		return nil, nil
	}
	out := make(animate.Overrides, len(s.BackOverridesMS))
	for name, v := range s.BackOverridesMS {
		variant, err := animate.ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s back_overrides_ms: %w", s.Name, err)
		}
		out[variant] = ms(v)
	}
	return out, nil
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: must be a string", ErrInvalidColor)
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("%w: %s", ErrInvalidColor, value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
