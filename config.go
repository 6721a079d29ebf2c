package radial

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration errors returned (wrapped) by Config.Validate.
var (
	ErrInvalidStepSize  = errors.New("step size must be a positive finite number")
	ErrInvalidRange     = errors.New("max must be greater than min")
	ErrStepExceedsRange = errors.New("step size exceeds the value range")
	ErrInvalidSize      = errors.New("invalid widget dimensions")
	ErrInvalidColor     = errors.New("invalid color")
)

// Config describes a slider's range, sizing, colors and behavior. A Config is
// treated as immutable once handed to a Slider; use Slider.SetConfig to
// change it.
type Config struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	StepSize float64 `yaml:"stepSize"`

	Size          float64 `yaml:"size"`          // overall diameter in pixels
	CircleWidth   float64 `yaml:"circleWidth"`   // track stroke width
	ProgressWidth float64 `yaml:"progressWidth"` // progress arc stroke width
	KnobRadius    float64 `yaml:"knobRadius"`

	CircleColor       string `yaml:"circleColor"`
	ProgressColor     string `yaml:"progressColor"`
	GradientColorFrom string `yaml:"gradientColorFrom"` // optional; both ends must be set
	GradientColorTo   string `yaml:"gradientColorTo"`
	KnobColor         string `yaml:"knobColor"`
	TooltipColor      string `yaml:"tooltipColor"`

	TooltipSize float64 `yaml:"tooltipSize"` // label font size in pixels

	Disabled       bool `yaml:"disabled"`
	Shadow         bool `yaml:"shadow"`
	ShowTooltip    bool `yaml:"showTooltip"`
	ShowPercentage bool `yaml:"showPercentage"`
}

// DefaultConfig returns the stock slider configuration.
func DefaultConfig() Config {
	return Config{
		Min:           0,
		Max:           100,
		StepSize:      60,
		Size:          180,
		CircleWidth:   5,
		ProgressWidth: 20,
		KnobRadius:    20,
		CircleColor:   "#e9eaee",
		ProgressColor: "#007aff",
		KnobColor:     "#fff",
		TooltipColor:  "#333",
		TooltipSize:   32,
		Shadow:        true,
	}
}

// Validate reports the first problem found in c. The returned error wraps one
// of the Err* sentinels.
func (c Config) Validate() error {
	if !(c.StepSize > 0) || math.IsInf(c.StepSize, 0) {
		return fmt.Errorf("radial: stepSize %v: %w", c.StepSize, ErrInvalidStepSize)
	}
	if math.IsNaN(c.Min) || math.IsNaN(c.Max) || math.IsInf(c.Min, 0) || math.IsInf(c.Max, 0) || c.Max <= c.Min {
		return fmt.Errorf("radial: min %v, max %v: %w", c.Min, c.Max, ErrInvalidRange)
	}
	if c.StepSize > c.Max-c.Min {
		return fmt.Errorf("radial: stepSize %v over range %v: %w", c.StepSize, c.Max-c.Min, ErrStepExceedsRange)
	}
	if !(c.Size > 0) || !(c.KnobRadius > 0) || c.CircleWidth < 0 || c.ProgressWidth < 0 || c.TooltipSize < 0 {
		return fmt.Errorf("radial: size %v, knob %v, widths %v/%v: %w",
			c.Size, c.KnobRadius, c.CircleWidth, c.ProgressWidth, ErrInvalidSize)
	}
	if c.trackRadius() <= 0 {
		return fmt.Errorf("radial: size %v leaves no room for the track: %w", c.Size, ErrInvalidSize)
	}
	if _, err := c.palette(); err != nil {
		return fmt.Errorf("radial: %w", err)
	}
	return nil
}

// trackRadius is the radius of the circle the knob travels on: the widget
// radius minus half of the thickest element drawn on the track.
func (c Config) trackRadius() float64 {
	maxLine := math.Max(c.CircleWidth, c.ProgressWidth)
	return c.Size/2 - math.Max(maxLine, c.KnobRadius*2)/2
}

// Palette holds the parsed colors of a Config.
type Palette struct {
	Circle   Color
	Progress Color
	Knob     Color
	Tooltip  Color
	// Gradient is true when both gradient ends are configured; the progress
	// arc then blends from GradientFrom to GradientTo.
	Gradient     bool
	GradientFrom Color
	GradientTo   Color
}

func (c Config) palette() (Palette, error) {
	var p Palette
	var err error
	if p.Circle, err = ParseColor(c.CircleColor); err != nil {
		return p, fmt.Errorf("circleColor: %w", err)
	}
	if p.Progress, err = ParseColor(c.ProgressColor); err != nil {
		return p, fmt.Errorf("progressColor: %w", err)
	}
	if p.Knob, err = ParseColor(c.KnobColor); err != nil {
		return p, fmt.Errorf("knobColor: %w", err)
	}
	if p.Tooltip, err = ParseColor(c.TooltipColor); err != nil {
		return p, fmt.Errorf("tooltipColor: %w", err)
	}
	if c.GradientColorFrom != "" && c.GradientColorTo != "" {
		if p.GradientFrom, err = ParseColor(c.GradientColorFrom); err != nil {
			return p, fmt.Errorf("gradientColorFrom: %w", err)
		}
		if p.GradientTo, err = ParseColor(c.GradientColorTo); err != nil {
			return p, fmt.Errorf("gradientColorTo: %w", err)
		}
		p.Gradient = true
	}
	return p, nil
}

// ParseConfig decodes YAML over DefaultConfig, so omitted keys keep their
// stock values, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("radial: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML slider configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("radial: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
