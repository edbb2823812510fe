package anim

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	kanjivg "github.com/tempo-eng/kanjivg-go"
)

// StyleBlock configures the look of a class of strokes. Color and Palette
// are mutually exclusive: a palette cycles by stroke position, a color
// applies uniformly.
type StyleBlock struct {
	// Color is a single color for every stroke: #RGB, #RRGGBB,
	// #RRGGBBAA, or an SVG color keyword.
	Color string `toml:"color"`

	// Palette cycles per stroke position when non-empty. Takes
	// precedence over Color.
	Palette []string `toml:"palette"`

	// Width is the stroke width in diagram units.
	Width float64 `toml:"width"`

	// CornerRadius controls the line cap and join: 0 draws square caps
	// and miter joins, any positive value draws round ones.
	CornerRadius float64 `toml:"corner_radius"`
}

// RadicalBlock is the override styling for radical strokes. When present
// on a Config, it replaces the base StyleBlock wholesale for every
// radical-eligible stroke; the two are never merged.
type RadicalBlock struct {
	Color        string   `toml:"color"`
	Palette      []string `toml:"palette"`
	Width        float64  `toml:"width"`
	CornerRadius float64  `toml:"corner_radius"`

	// Allow restricts which radical kinds are highlighted. Empty means
	// auto-detect (general, then tradit; never nelson).
	Allow []string `toml:"allow"`
}

func (r *RadicalBlock) styleBlock() StyleBlock {
	return StyleBlock{Color: r.Color, Palette: r.Palette, Width: r.Width, CornerRadius: r.CornerRadius}
}

// allowKinds converts the allow-list for the radical classifier: nil for
// auto-detect, a concrete list otherwise.
func (r *RadicalBlock) allowKinds() []kanjivg.RadicalKind {
	if r == nil || len(r.Allow) == 0 {
		return nil
	}
	kinds := make([]kanjivg.RadicalKind, len(r.Allow))
	for i, k := range r.Allow {
		kinds[i] = kanjivg.RadicalKind(k)
	}
	return kinds
}

// Config is the full animation and styling configuration. The zero value
// is not usable directly; start from DefaultConfig and override.
type Config struct {
	// DelayMs is the pause between consecutive strokes.
	DelayMs int `toml:"delay_ms"`

	// StartDelayMs shifts the whole schedule uniformly.
	StartDelayMs int `toml:"start_delay_ms"`

	// DurationMs is the fixed per-stroke reveal time. Mutually exclusive
	// with Speed.
	DurationMs int `toml:"duration_ms"`

	// Speed is the drawing speed in path-length units per second. When
	// positive, per-stroke durations are derived from path lengths.
	// Mutually exclusive with DurationMs.
	Speed float64 `toml:"speed"`

	// Loop marks the plan for restart after the last stroke's duration
	// plus one delay. It changes no computed offset or duration.
	Loop bool `toml:"loop"`

	// ShowNumbers keeps stroke numerals permanently visible. Wins over
	// FlashNumbers when both are set.
	ShowNumbers bool `toml:"show_numbers"`

	// FlashNumbers fades each numeral in and out once, synchronized with
	// its stroke's reveal.
	FlashNumbers bool `toml:"flash_numbers"`

	// Trace draws the full character once, statically, beneath the
	// animated strokes.
	Trace bool `toml:"trace"`

	// Stroke is the base styling for every stroke.
	Stroke StyleBlock `toml:"stroke"`

	// Radical, when non-nil, replaces Stroke for radical-eligible
	// strokes.
	Radical *RadicalBlock `toml:"radical"`

	// TraceStyle styles the static underlay. Only consulted when Trace
	// is set; unaffected by animation and radical overrides.
	TraceStyle StyleBlock `toml:"trace_style"`
}

// DefaultConfig returns the stock configuration: fixed 800ms strokes with
// a 200ms delay, black round-capped strokes, numerals hidden, no trace.
func DefaultConfig() Config {
	return Config{
		DelayMs:    200,
		DurationMs: 800,
		Stroke: StyleBlock{
			Color:        "#000000",
			Width:        3,
			CornerRadius: 2,
		},
		TraceStyle: StyleBlock{
			Color:        "#dddddd",
			Width:        3,
			CornerRadius: 2,
		},
	}
}

// Validate checks the configuration for contradictions. Color strings are
// checked here too, so BuildPlan on a validated Config cannot fail on
// styling.
func (c Config) Validate() error {
	if c.DurationMs > 0 && c.Speed > 0 {
		return errors.New("anim: duration_ms and speed are mutually exclusive")
	}
	if c.DurationMs < 0 || c.Speed < 0 || c.DelayMs < 0 || c.StartDelayMs < 0 {
		return errors.New("anim: timing values must not be negative")
	}
	if c.DurationMs == 0 && c.Speed == 0 {
		return errors.New("anim: one of duration_ms or speed is required")
	}
	if err := validateStyle("stroke", c.Stroke); err != nil {
		return err
	}
	if c.Radical != nil {
		if err := validateStyle("radical", c.Radical.styleBlock()); err != nil {
			return err
		}
	}
	if c.Trace {
		if err := validateStyle("trace_style", c.TraceStyle); err != nil {
			return err
		}
	}
	return nil
}

func validateStyle(name string, b StyleBlock) error {
	if b.Width < 0 {
		return fmt.Errorf("anim: %s width must not be negative", name)
	}
	if len(b.Palette) == 0 && b.Color == "" {
		return fmt.Errorf("anim: %s needs a color or a palette", name)
	}
	for _, s := range b.Palette {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("anim: %s palette: %w", name, err)
		}
	}
	if b.Color != "" && len(b.Palette) == 0 {
		if _, err := ParseColor(b.Color); err != nil {
			return fmt.Errorf("anim: %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig reads a TOML configuration file over DefaultConfig and
// validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("anim: config %s: %w", path, err)
	}
	if cfg.Speed > 0 {
		// A speed in the file switches modes; drop the default duration.
		if cfg.DurationMs == DefaultConfig().DurationMs {
			cfg.DurationMs = 0
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
