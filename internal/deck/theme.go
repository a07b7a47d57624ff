package deck

// Theme is a fixed palette applied uniformly across a rendered deck.
// Color values are RRGGBB hex without a leading '#'.
type Theme struct {
	ID         string
	Name       string
	Background string
	Primary    string
	Secondary  string
	Accent     string
	Text       string
	LightText  string
}

// DefaultThemeID is used when a requested theme is unknown.
const DefaultThemeID = "professional"

var themes = []Theme{
	{
		ID:         "professional",
		Name:       "Professional",
		Background: "FFFFFF",
		Primary:    "1F4E79",
		Secondary:  "5B9BD5",
		Accent:     "ED7D31",
		Text:       "333333",
		LightText:  "999999",
	},
	{
		ID:         "midnight",
		Name:       "Midnight",
		Background: "0F1C2E",
		Primary:    "64B5F6",
		Secondary:  "90CAF9",
		Accent:     "FFB74D",
		Text:       "ECEFF1",
		LightText:  "78909C",
	},
	{
		ID:         "sunset",
		Name:       "Sunset",
		Background: "FFF8F0",
		Primary:    "C0392B",
		Secondary:  "E67E22",
		Accent:     "F1C40F",
		Text:       "4A2C2A",
		LightText:  "B08968",
	},
	{
		ID:         "forest",
		Name:       "Forest",
		Background: "F4F9F4",
		Primary:    "1B5E20",
		Secondary:  "388E3C",
		Accent:     "8BC34A",
		Text:       "213421",
		LightText:  "7E9B7E",
	},
	{
		ID:         "ocean",
		Name:       "Ocean",
		Background: "F0F7FA",
		Primary:    "01579B",
		Secondary:  "0288D1",
		Accent:     "26C6DA",
		Text:       "103A4A",
		LightText:  "7FA8B8",
	},
}

// Lookup returns the theme for id, falling back to the default theme when
// the id is unknown. It never fails: theme selection is advisory.
func Lookup(id string) Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

// Themes returns the catalog of built-in themes in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Colors returns the palette as a name -> "#RRGGBB" map for API responses.
func (t Theme) Colors() map[string]string {
	return map[string]string{
		"background": "#" + t.Background,
		"primary":    "#" + t.Primary,
		"secondary":  "#" + t.Secondary,
		"accent":     "#" + t.Accent,
		"text":       "#" + t.Text,
		"light_text": "#" + t.LightText,
	}
}
