package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// geometryYAML is the on-disk shape of a page-setup preset.
type geometryYAML struct {
	Preset string  `yaml:"preset"` // "letter" or "a4"; overridden by explicit fields
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin struct {
		Top    *float64 `yaml:"top"`
		Bottom *float64 `yaml:"bottom"`
		Left   *float64 `yaml:"left"`
		Right  *float64 `yaml:"right"`
	} `yaml:"margin"`
	LineHeight float64 `yaml:"lineHeight"`
}

// GeometryFromYAML parses a page-setup preset from YAML configuration.
// Fields that are omitted fall back to the named preset (default letter):
//
//	preset: a4
//	margin:
//	  top: 54
//	  bottom: 54
//	lineHeight: 13
func GeometryFromYAML(data []byte) (PageGeometry, error) {
	var raw geometryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return PageGeometry{}, fmt.Errorf("parsing geometry config: %w", err)
	}

	var geom PageGeometry
	switch raw.Preset {
	case "", "letter":
		geom = LetterGeometry()
	case "a4":
		geom = A4Geometry()
	default:
		return PageGeometry{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidGeometry, raw.Preset)
	}

	if raw.Width > 0 {
		geom.Width = raw.Width
	}
	if raw.Height > 0 {
		geom.Height = raw.Height
	}
	if raw.Margin.Top != nil {
		geom.Margin.Top = *raw.Margin.Top
	}
	if raw.Margin.Bottom != nil {
		geom.Margin.Bottom = *raw.Margin.Bottom
	}
	if raw.Margin.Left != nil {
		geom.Margin.Left = *raw.Margin.Left
	}
	if raw.Margin.Right != nil {
		geom.Margin.Right = *raw.Margin.Right
	}
	if raw.LineHeight > 0 {
		geom.LineHeight = raw.LineHeight
	}

	if err := geom.Validate(); err != nil {
		return PageGeometry{}, err
	}
	return geom, nil
}
