package manifest

// Defaults holds the fixed values substituted for absent or invalid input.
// They are owned by the Assembler rather than being package state so tests
// can substitute their own table.
type Defaults struct {
	StartURL        string
	Scope           string
	Display         string
	Orientation     string
	ThemeColor      string
	BackgroundColor string
	Icons           []IconInput
}

// DefaultSettings returns the standard defaults table.
func DefaultSettings() Defaults {
	return Defaults{
		StartURL:        "/",
		Scope:           "/",
		Display:         "standalone",
		Orientation:     "any",
		ThemeColor:      "#ffffff",
		BackgroundColor: "#ffffff",
		Icons: []IconInput{
			{Src: "icon-192x192.png", Sizes: "192x192", Type: "image/png", Purpose: "any"},
			{Src: "icon-512x512.png", Sizes: "512x512", Type: "image/png", Purpose: "any"},
		},
	}
}

// Allowed enum values per the W3C manifest specification.
var (
	displayValues = map[string]bool{
		"fullscreen": true,
		"standalone": true,
		"minimal-ui": true,
		"browser":    true,
	}
	orientationValues = map[string]bool{
		"any":                 true,
		"natural":             true,
		"landscape":           true,
		"portrait":            true,
		"portrait-primary":    true,
		"portrait-secondary":  true,
		"landscape-primary":   true,
		"landscape-secondary": true,
	}
	dirValues = map[string]bool{
		"ltr":  true,
		"rtl":  true,
		"auto": true,
	}
	purposeValues = map[string]bool{
		"any":        true,
		"maskable":   true,
		"monochrome": true,
	}
)
