package palette

// ColorScheme is a light/dark colour pair for one course. Values are hex
// colours usable by lipgloss, SVG and HTML alike.
type ColorScheme struct {
	Bg         string `json:"bg" yaml:"bg"`
	Border     string `json:"border" yaml:"border"`
	Text       string `json:"text" yaml:"text"`
	DarkBg     string `json:"dark_bg" yaml:"dark_bg"`
	DarkBorder string `json:"dark_border" yaml:"dark_border"`
	DarkText   string `json:"dark_text" yaml:"dark_text"`
}

// Swatch is a scheme resolved for one theme
type Swatch struct {
	Bg     string `json:"bg"`
	Border string `json:"border"`
	Text   string `json:"text"`
}

// Light returns the light-theme colours
func (c ColorScheme) Light() Swatch {
	return Swatch{Bg: c.Bg, Border: c.Border, Text: c.Text}
}

// Dark returns the dark-theme colours
func (c ColorScheme) Dark() Swatch {
	return Swatch{Bg: c.DarkBg, Border: c.DarkBorder, Text: c.DarkText}
}

// DefaultScheme is used for labels without a known course code
var DefaultScheme = ColorScheme{
	Bg: "#dbeafe", Border: "#bfdbfe", Text: "#1d4ed8",
	DarkBg: "#1e3a8a", DarkBorder: "#1e40af", DarkText: "#93c5fd",
}

// DefaultSchemes is the built-in palette. Course codes cycle through it in
// order, so the order is part of the colour assignment.
var DefaultSchemes = []ColorScheme{
	// purple
	{Bg: "#f3e8ff", Border: "#e9d5ff", Text: "#7e22ce", DarkBg: "#581c87", DarkBorder: "#6b21a8", DarkText: "#d8b4fe"},
	// green
	{Bg: "#dcfce7", Border: "#bbf7d0", Text: "#15803d", DarkBg: "#14532d", DarkBorder: "#166534", DarkText: "#86efac"},
	// orange
	{Bg: "#ffedd5", Border: "#fed7aa", Text: "#c2410c", DarkBg: "#7c2d12", DarkBorder: "#9a3412", DarkText: "#fdba74"},
	// pink
	{Bg: "#fce7f3", Border: "#fbcfe8", Text: "#be185d", DarkBg: "#831843", DarkBorder: "#9d174d", DarkText: "#f9a8d4"},
	// yellow
	{Bg: "#fef9c3", Border: "#fef08a", Text: "#a16207", DarkBg: "#713f12", DarkBorder: "#854d0e", DarkText: "#fde047"},
	// indigo
	{Bg: "#e0e7ff", Border: "#c7d2fe", Text: "#4338ca", DarkBg: "#312e81", DarkBorder: "#3730a3", DarkText: "#a5b4fc"},
	// red
	{Bg: "#fee2e2", Border: "#fecaca", Text: "#b91c1c", DarkBg: "#7f1d1d", DarkBorder: "#991b1b", DarkText: "#fca5a5"},
	// cyan
	{Bg: "#cffafe", Border: "#a5f3fc", Text: "#0e7490", DarkBg: "#164e63", DarkBorder: "#155e75", DarkText: "#67e8f9"},
	// emerald
	{Bg: "#a7f3d0", Border: "#6ee7b7", Text: "#065f46", DarkBg: "#064e3b", DarkBorder: "#065f46", DarkText: "#6ee7b7"},
	// lime
	{Bg: "#d9f99d", Border: "#bef264", Text: "#3f6212", DarkBg: "#365314", DarkBorder: "#3f6212", DarkText: "#bef264"},
	// amber
	{Bg: "#fde68a", Border: "#fcd34d", Text: "#92400e", DarkBg: "#78350f", DarkBorder: "#92400e", DarkText: "#fcd34d"},
	// sky
	{Bg: "#e0f2fe", Border: "#bae6fd", Text: "#0369a1", DarkBg: "#0c4a6e", DarkBorder: "#075985", DarkText: "#7dd3fc"},
	// teal
	{Bg: "#ccfbf1", Border: "#99f6e4", Text: "#0f766e", DarkBg: "#134e4a", DarkBorder: "#115e59", DarkText: "#5eead4"},
	// violet
	{Bg: "#ede9fe", Border: "#ddd6fe", Text: "#6d28d9", DarkBg: "#4c1d95", DarkBorder: "#5b21b6", DarkText: "#c4b5fd"},
	// rose
	{Bg: "#fecdd3", Border: "#fda4af", Text: "#9f1239", DarkBg: "#881337", DarkBorder: "#9f1239", DarkText: "#fda4af"},
	// fuchsia
	{Bg: "#f5d0fe", Border: "#f0abfc", Text: "#86198f", DarkBg: "#701a75", DarkBorder: "#86198f", DarkText: "#f0abfc"},
	// slate
	{Bg: "#e2e8f0", Border: "#cbd5e1", Text: "#1e293b", DarkBg: "#0f172a", DarkBorder: "#1e293b", DarkText: "#cbd5e1"},
	// brand blue
	{Bg: "#547dde", Border: "#548ef7", Text: "#ffffff", DarkBg: "#48677a", DarkBorder: "#306099", DarkText: "#86bfe3"},
	// neutral
	{Bg: "#e5e5e5", Border: "#d4d4d4", Text: "#262626", DarkBg: "#171717", DarkBorder: "#262626", DarkText: "#d4d4d4"},
	// blue
	{Bg: "#bfdbfe", Border: "#93c5fd", Text: "#1e40af", DarkBg: "#1e3a8a", DarkBorder: "#1e40af", DarkText: "#93c5fd"},
	// green, deeper
	{Bg: "#bbf7d0", Border: "#86efac", Text: "#166534", DarkBg: "#14532d", DarkBorder: "#166534", DarkText: "#86efac"},
	// purple, deeper
	{Bg: "#e9d5ff", Border: "#d8b4fe", Text: "#6b21a8", DarkBg: "#581c87", DarkBorder: "#6b21a8", DarkText: "#d8b4fe"},
	// pink, deeper
	{Bg: "#fbcfe8", Border: "#f9a8d4", Text: "#9d174d", DarkBg: "#831843", DarkBorder: "#9d174d", DarkText: "#f9a8d4"},
	// red, deeper
	{Bg: "#fecaca", Border: "#fca5a5", Text: "#991b1b", DarkBg: "#7f1d1d", DarkBorder: "#991b1b", DarkText: "#fca5a5"},
	// yellow, deeper
	{Bg: "#fef08a", Border: "#fde047", Text: "#854d0e", DarkBg: "#713f12", DarkBorder: "#854d0e", DarkText: "#fde047"},
	// cyan, deeper
	{Bg: "#a5f3fc", Border: "#67e8f9", Text: "#155e75", DarkBg: "#164e63", DarkBorder: "#155e75", DarkText: "#67e8f9"},
	// indigo, deeper
	{Bg: "#c7d2fe", Border: "#a5b4fc", Text: "#3730a3", DarkBg: "#312e81", DarkBorder: "#3730a3", DarkText: "#a5b4fc"},
	// rose, light
	{Bg: "#ffe4e6", Border: "#fecdd3", Text: "#be123c", DarkBg: "#881337", DarkBorder: "#9f1239", DarkText: "#fda4af"},
}

// DefaultCodes is the ordered course-code list. A code's position picks its
// scheme modulo the palette size. 361 is listed twice; the later position
// wins.
var DefaultCodes = []string{
	// 100 level
	"140", "141", "142", "143", "144", "145", "146", "147", "148", "149",
	"150", "151", "152", "153", "154", "155", "156", "157", "158", "159",
	"160", "161", "162", "163", "164", "165", "166", "167", "168", "169",
	"170", "171", "172", "173", "174", "175", "176", "177", "178", "179",
	"180", "181", "182", "183", "184", "185", "186", "187", "188", "189",
	// 200 level
	"251", "252", "254", "255", "256", "257", "258", "259", "260", "261",
	"265", "266", "270", "271", "272", "273", "275", "276", "277", "278",
	"279", "281",
	// 300 level
	"354", "356", "361", "363", "364", "365", "367", "372", "373", "374",
	"375", "377", "378", "379", "380", "381", "382", "384", "371", "361",
	"369",
	// 400 level
	"450", "451", "452", "458", "459", "460", "461", "463", "466", "469",
	"470", "471", "472", "473", "475",
}
