package plotting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StyleSheet is an optional figure style profile loaded from YAML, so a set
// of publication figures can share dimensions and styling without repeating
// them per call. Unset fields keep the ProfileOptions defaults.
type StyleSheet struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	SweepAlpha *float64 `yaml:"sweep_alpha"`
	Grid       *bool    `yaml:"grid"`
	Legend     *bool    `yaml:"legend"`
	Caption    string   `yaml:"caption"`
}

// LoadStyleSheet reads and validates a YAML stylesheet.
func LoadStyleSheet(path string) (*StyleSheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	var s StyleSheet
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse stylesheet %s: %w", path, err)
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("stylesheet dimensions %dx%d must not be negative", s.Width, s.Height)
	}
	if s.SweepAlpha != nil && (*s.SweepAlpha < 0 || *s.SweepAlpha > 1) {
		return nil, fmt.Errorf("stylesheet sweep_alpha %g outside [0, 1]", *s.SweepAlpha)
	}
	return &s, nil
}

// Apply overlays the stylesheet's set fields onto a base options value.
func (s *StyleSheet) Apply(o ProfileOptions) ProfileOptions {
	if s == nil {
		return o
	}
	if s.Width > 0 {
		o.Width = s.Width
	}
	if s.Height > 0 {
		o.Height = s.Height
	}
	if s.SweepAlpha != nil {
		o.SweepAlpha = *s.SweepAlpha
	}
	if s.Grid != nil {
		o.Grid = *s.Grid
	}
	if s.Legend != nil {
		o.AddLegend = *s.Legend
	}
	if s.Caption != "" {
		o.Caption = s.Caption
	}
	return o
}
