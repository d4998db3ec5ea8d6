package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML tuning file. Only the knobs that have
// historically drifted between page revisions are exposed; anything
// absent keeps its compiled default.
type Overrides struct {
	Scroll struct {
		AnimationDistance *float64 `yaml:"animation_distance"`
		WheelSpeed        *float64 `yaml:"wheel_speed"`
		Smoothing         *float64 `yaml:"smoothing"`
	} `yaml:"scroll"`

	Phase struct {
		FlipEnd *float64 `yaml:"flip_end"`
	} `yaml:"phase"`

	Deck struct {
		Spacing  *float64 `yaml:"spacing"`
		StackGap *float64 `yaml:"stack_gap"`
	} `yaml:"deck"`

	Hover struct {
		ScaleTarget *float64 `yaml:"scale_target"`
		Lift        *float64 `yaml:"lift"`
		Smoothing   *float64 `yaml:"smoothing"`
	} `yaml:"hover"`

	Float struct {
		Count     *int     `yaml:"count"`
		BaseSpeed *float64 `yaml:"base_speed"`
	} `yaml:"float"`
}

// LoadOverrides reads a tuning file and applies it over the defaults.
// A missing file is not an error; a malformed one is.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read overrides: %w", err)
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parse overrides: %w", err)
	}
	ov.Apply()
	return nil
}

// Apply copies every set field onto the global configuration.
func (ov *Overrides) Apply() {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	setF(&Scroll.AnimationDistance, ov.Scroll.AnimationDistance)
	setF(&Scroll.WheelSpeed, ov.Scroll.WheelSpeed)
	setF(&Scroll.Smoothing, ov.Scroll.Smoothing)

	setF(&Phase.FlipEnd, ov.Phase.FlipEnd)

	setF(&Deck.Spacing, ov.Deck.Spacing)
	setF(&Deck.StackGap, ov.Deck.StackGap)

	setF(&Hover.ScaleTarget, ov.Hover.ScaleTarget)
	setF(&Hover.Lift, ov.Hover.Lift)
	setF(&Hover.Smoothing, ov.Hover.Smoothing)

	if ov.Float.Count != nil {
		Float.Count = *ov.Float.Count
	}
	setF(&Float.BaseSpeed, ov.Float.BaseSpeed)
}
