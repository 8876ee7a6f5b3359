package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseCode(t *testing.T) {
	cases := map[string]string{
		"CE 3A 141 (P) SMITH (GF1)": "141",
		"MA 375 STATS 1234":         "375",
		"CE 3A 141 / MA 375":        "141",
		"SEMINAR":                   "",
		"ROOM 1234":                 "",
		"":                          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, CourseCode(in), in)
	}
}

func TestBuiltInPaletteShape(t *testing.T) {
	assert.Len(t, DefaultSchemes, 28)
	assert.Len(t, DefaultCodes, 108)
}

func TestResolverScheme(t *testing.T) {
	r := Default()

	// 140 is the first listed code
	assert.Equal(t, DefaultSchemes[0], r.Scheme("CE 1A 140 INTRO"))

	// 375 sits at position 82; 82 % 28 == 26
	i, ok := r.Index("CE 3A 375")
	require.True(t, ok)
	assert.Equal(t, 26, i)

	// 361 is listed at 74 and 91; the later one wins
	i, ok = r.Index("CE 3A 361")
	require.True(t, ok)
	assert.Equal(t, 91%28, i)

	assert.Equal(t, DefaultScheme, r.Scheme("LIBRARY HOUR"))
	assert.Equal(t, DefaultScheme, r.Scheme("CE 3A 999"))
}

func TestResolverResolveTheme(t *testing.T) {
	r := Default()
	label := "CE 1A 140"

	light := r.Resolve(label, ThemeContext{Theme: ThemeLight, PrefersDark: true})
	assert.Equal(t, "#f3e8ff", light.Bg)

	dark := r.Resolve(label, ThemeContext{Theme: ThemeDark})
	assert.Equal(t, "#581c87", dark.Bg)
	assert.Equal(t, "#d8b4fe", dark.Text)

	system := r.Resolve(label, ThemeContext{Theme: ThemeSystem, PrefersDark: true})
	assert.Equal(t, dark, system)
}

func TestNewRejectsEmptyPalette(t *testing.T) {
	_, err := New(DefaultCodes, nil, DefaultScheme)
	assert.ErrorIs(t, err, ErrEmptyPalette)
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	th, err = ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeSystem, th)

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	r, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSchemes[0], r.Scheme("140"))

	path := filepath.Join(t.TempDir(), "palette.yaml")
	content := `codes: ["500", "501"]
schemes:
  - {bg: "#000001", border: "#000002", text: "#000003", dark_bg: "#100001", dark_border: "#100002", dark_text: "#100003"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#000001", r.Scheme("XX 501").Bg, "both codes wrap onto the single scheme")
	assert.Equal(t, DefaultScheme, r.Scheme("CE 140"), "codes list was replaced")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFileEmptySchemes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schemes: []\n"), 0644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrEmptyPalette)
}
