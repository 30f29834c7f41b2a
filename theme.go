package lattice

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lattice-ui/lattice/render"
)

// Theme is the on-disk TOML form of a render style. Colors are hex strings
// ("#RRGGBB" or "#RRGGBBAA"). Omitted fields keep the default style's value.
type Theme struct {
	Background string  `toml:"background"`
	Foreground string  `toml:"foreground"`
	FocusRing  string  `toml:"focus_ring"`
	FontSize   float32 `toml:"font_size"`
}

// parseHexColor converts "#RRGGBB" or "#RRGGBBAA" to packed RGBA. An
// omitted alpha is opaque.
func parseHexColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xFF
	}
	return uint32(n), nil
}

// Style resolves the theme against the default style.
func (t Theme) Style() (render.Style, error) {
	st := render.DefaultStyle()
	for _, f := range []struct {
		value string
		dst   *uint32
	}{
		{t.Background, &st.Background},
		{t.Foreground, &st.Foreground},
		{t.FocusRing, &st.FocusRing},
	} {
		if f.value == "" {
			continue
		}
		c, err := parseHexColor(f.value)
		if err != nil {
			return st, err
		}
		*f.dst = c
	}
	if t.FontSize > 0 {
		st.FontSize = t.FontSize
	}
	return st, nil
}

// ParseTheme decodes a TOML theme document into a render style.
func ParseTheme(data []byte) (render.Style, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return render.DefaultStyle(), fmt.Errorf("parsing theme: %w", err)
	}
	st, err := t.Style()
	if err != nil {
		return render.DefaultStyle(), fmt.Errorf("parsing theme: %w", err)
	}
	return st, nil
}

// LoadThemeFile reads and decodes a TOML theme file.
func LoadThemeFile(path string) (render.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return render.DefaultStyle(), fmt.Errorf("reading theme file: %w", err)
	}
	return ParseTheme(data)
}
