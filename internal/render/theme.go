package render

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme colours an SVG candybar. Colours are any CSS colour value.
type Theme struct {
	ISO           string `yaml:"iso"`
	Dim           string `yaml:"dim"`
	Highlight     string `yaml:"highlight"`      // first day of a month
	HighlightBold string `yaml:"highlight_bold"` // new moon
	Background    string `yaml:"background"`
	FontFamily    string `yaml:"font_family"`
	FontSize      int    `yaml:"font_size"` // px
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		ISO:           "lightgrey",
		Dim:           "grey",
		Highlight:     "green",
		HighlightBold: "red",
		Background:    "white",
		FontFamily:    "Courier, Arial, Helvetica, sans-serif",
		FontSize:      15,
	}
}

// Normalize fills empty fields from DefaultTheme.
func (t *Theme) Normalize() {
	def := DefaultTheme()
	fill := func(v *string, d string) {
		if strings.TrimSpace(*v) == "" {
			*v = d
		}
	}
	fill(&t.ISO, def.ISO)
	fill(&t.Dim, def.Dim)
	fill(&t.Highlight, def.Highlight)
	fill(&t.HighlightBold, def.HighlightBold)
	fill(&t.Background, def.Background)
	fill(&t.FontFamily, def.FontFamily)
	if t.FontSize <= 0 {
		t.FontSize = def.FontSize
	}
}

// LoadTheme reads a YAML theme. Keys left out keep their default values.
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return Theme{}, errors.New("theme path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}

	t := DefaultTheme()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	t.Normalize()

	return t, nil
}
