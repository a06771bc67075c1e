package config

import (
	"sort"

	"github.com/san-kum/bishop/internal/bishop"
)

// Preset is a named drawing setup.
type Preset struct {
	Chars  string
	Width  int
	Height int
}

var Presets = map[string]Preset{
	"openssh": {Chars: bishop.DefaultChars, Width: 17, Height: 9},
	"ascii":   {Chars: " .:-=+*#%@SE", Width: 17, Height: 9},
	"blocks":  {Chars: " ░▒▓█SE", Width: 17, Height: 9},
	"dots":    {Chars: " ·∙•●◉○◎", Width: 17, Height: 9},
	"wide":    {Chars: bishop.DefaultChars, Width: 33, Height: 17},
	"minimal": {Chars: " .SE", Width: 17, Height: 9},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset palette and geometry into c.
func (p *Preset) Apply(c *Config) {
	c.Chars = p.Chars
	c.Width = p.Width
	c.Height = p.Height
}
