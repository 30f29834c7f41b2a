package lattice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lattice-ui/lattice/render"
)

func TestParseTheme(t *testing.T) {
	st, err := ParseTheme([]byte(`
background = "#101018"
foreground = "#FAFAFA"
focus_ring = "#00FF0080"
font_size = 18.0
`))
	if err != nil {
		t.Fatal(err)
	}

	if st.Background != 0x101018FF {
		t.Errorf("background = %#x, want %#x", st.Background, 0x101018FF)
	}
	if st.Foreground != 0xFAFAFAFF {
		t.Errorf("foreground = %#x, want %#x", st.Foreground, 0xFAFAFAFF)
	}
	if st.FocusRing != 0x00FF0080 {
		t.Errorf("focus ring = %#x, want %#x", st.FocusRing, 0x00FF0080)
	}
	if st.FontSize != 18 {
		t.Errorf("font size = %v, want 18", st.FontSize)
	}
}

func TestParseThemePartialKeepsDefaults(t *testing.T) {
	st, err := ParseTheme([]byte(`foreground = "#112233"`))
	if err != nil {
		t.Fatal(err)
	}

	def := render.DefaultStyle()
	if st.Foreground != 0x112233FF {
		t.Errorf("foreground = %#x, want %#x", st.Foreground, 0x112233FF)
	}
	if st.Background != def.Background || st.FontSize != def.FontSize {
		t.Error("omitted fields did not keep defaults")
	}
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"invalid TOML", `background = `},
		{"short color", `background = "#123"`},
		{"non-hex color", `background = "#GGGGGG"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTheme([]byte(tt.doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(`font_size = 22.0`), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := LoadThemeFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.FontSize != 22 {
		t.Errorf("font size = %v, want 22", st.FontSize)
	}

	if _, err := LoadThemeFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file did not error")
	}
}
