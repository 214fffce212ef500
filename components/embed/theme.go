package embed

// Variant selects one of the snippet layouts.
type Variant string

// Snippet layout variants.
const (
	VariantBubbleLight Variant = "bubble-light"
	VariantBubbleDark  Variant = "bubble-dark"
	VariantIframe      Variant = "iframe"
	VariantScript      Variant = "script"
	VariantCard        Variant = "card"
	VariantFullscreen  Variant = "fullscreen"
)

// Variants lists every layout in display order.
func Variants() []Variant {
	return []Variant{
		VariantBubbleLight,
		VariantBubbleDark,
		VariantIframe,
		VariantScript,
		VariantCard,
		VariantFullscreen,
	}
}

// ValidVariant reports whether v is a known layout.
func ValidVariant(v Variant) bool {
	for _, known := range Variants() {
		if v == known {
			return true
		}
	}
	return false
}

// Theme carries the user-chosen visual parameters interpolated into a
// snippet. Colors are "#rrggbb" strings.
type Theme struct {
	PrimaryColor   string `yaml:"primary_color" json:"primary_color"`
	TextColor      string `yaml:"text_color" json:"text_color"`
	Background     string `yaml:"background" json:"background"`
	BubbleIcon     string `yaml:"bubble_icon" json:"bubble_icon"`
	Greeting       string `yaml:"greeting" json:"greeting"`
	WidthPixels    int    `yaml:"width_pixels" json:"width_pixels"`
	HeightPixels   int    `yaml:"height_pixels" json:"height_pixels"`
	CornerRadius   int    `yaml:"corner_radius" json:"corner_radius"`
	PositionRight  bool   `yaml:"position_right" json:"position_right"`
	LauncherPixels int    `yaml:"launcher_pixels" json:"launcher_pixels"`
}

// DefaultTheme mirrors the widget's stock look.
func DefaultTheme() Theme {
	return Theme{
		PrimaryColor:   "#4f46e5",
		TextColor:      "#111827",
		Background:     "#ffffff",
		BubbleIcon:     "💬",
		Greeting:       "Hi! How can I help you today?",
		WidthPixels:    380,
		HeightPixels:   560,
		CornerRadius:   16,
		PositionRight:  true,
		LauncherPixels: 56,
	}
}

// SnippetConfig is the full input to a template builder.
type SnippetConfig struct {
	BackendURL string
	BotID      string
	// PublicKey is the rotatable bot key embedded in the snippet so the widget
	// can chat without a user session.
	PublicKey string
	Theme     Theme
}
