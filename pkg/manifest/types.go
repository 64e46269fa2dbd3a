// Package manifest assembles and validates W3C web application manifests
// from declarative configuration.
package manifest

// Config is the caller-supplied input model. Every field is optional;
// the assembler supplies defaults for anything absent or blank.
//
// Slice fields distinguish absent (nil) from explicitly empty, which
// matters for shortcuts and categories: an empty sequence is carried
// through to the document, an absent one is not.
type Config struct {
	Name            string          `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" mapstructure:"name"`
	ShortName       string          `json:"short_name,omitempty" yaml:"short_name,omitempty" toml:"short_name,omitempty" mapstructure:"short_name"`
	Description     string          `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" mapstructure:"description"`
	StartURL        string          `json:"start_url,omitempty" yaml:"start_url,omitempty" toml:"start_url,omitempty" mapstructure:"start_url"`
	ID              string          `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty" mapstructure:"id"`
	Scope           string          `json:"scope,omitempty" yaml:"scope,omitempty" toml:"scope,omitempty" mapstructure:"scope"`
	Display         string          `json:"display,omitempty" yaml:"display,omitempty" toml:"display,omitempty" mapstructure:"display"`
	Orientation     string          `json:"orientation,omitempty" yaml:"orientation,omitempty" toml:"orientation,omitempty" mapstructure:"orientation"`
	ThemeColor      string          `json:"theme_color,omitempty" yaml:"theme_color,omitempty" toml:"theme_color,omitempty" mapstructure:"theme_color"`
	BackgroundColor string          `json:"background_color,omitempty" yaml:"background_color,omitempty" toml:"background_color,omitempty" mapstructure:"background_color"`
	Lang            string          `json:"lang,omitempty" yaml:"lang,omitempty" toml:"lang,omitempty" mapstructure:"lang"`
	Dir             string          `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty" mapstructure:"dir"`
	Icons           []IconInput     `json:"icons,omitempty" yaml:"icons,omitempty" toml:"icons,omitempty" mapstructure:"icons"`
	Shortcuts       []ShortcutInput `json:"shortcuts,omitempty" yaml:"shortcuts,omitempty" toml:"shortcuts,omitempty" mapstructure:"shortcuts"`
	Categories      []string        `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty" mapstructure:"categories"`
	IconsDir        string          `json:"icons_dir,omitempty" yaml:"icons_dir,omitempty" toml:"icons_dir,omitempty" mapstructure:"icons_dir"`
}

// IconInput is a declared icon before normalization. An entry without a
// resolvable src is dropped during assembly.
type IconInput struct {
	Src     string `json:"src,omitempty" yaml:"src,omitempty" toml:"src,omitempty" mapstructure:"src"`
	Sizes   string `json:"sizes,omitempty" yaml:"sizes,omitempty" toml:"sizes,omitempty" mapstructure:"sizes"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty" mapstructure:"type"`
	Purpose string `json:"purpose,omitempty" yaml:"purpose,omitempty" toml:"purpose,omitempty" mapstructure:"purpose"`
}

// ShortcutInput is a declared shortcut before normalization. Name and URL
// are both required for the entry to survive.
type ShortcutInput struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" mapstructure:"name"`
	ShortName   string      `json:"short_name,omitempty" yaml:"short_name,omitempty" toml:"short_name,omitempty" mapstructure:"short_name"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" mapstructure:"description"`
	URL         string      `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty" mapstructure:"url"`
	Icons       []IconInput `json:"icons,omitempty" yaml:"icons,omitempty" toml:"icons,omitempty" mapstructure:"icons"`
}

// Manifest is the assembled document. Field order here is the emission
// order in the serialized output; the output schema is closed, so
// unrecognized input keys never appear.
type Manifest struct {
	Name            string      `json:"name"`
	ShortName       string      `json:"short_name"`
	Description     string      `json:"description,omitempty"`
	StartURL        string      `json:"start_url"`
	ID              string      `json:"id,omitempty"`
	Scope           string      `json:"scope"`
	Display         string      `json:"display"`
	Orientation     string      `json:"orientation"`
	ThemeColor      string      `json:"theme_color"`
	BackgroundColor string      `json:"background_color"`
	Lang            string      `json:"lang,omitempty"`
	Dir             string      `json:"dir,omitempty"`
	Icons           []Icon      `json:"icons"`
	Shortcuts       *[]Shortcut `json:"shortcuts,omitempty"`
	Categories      *[]string   `json:"categories,omitempty"`
}

// Icon is a normalized icon descriptor as emitted in the document.
type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes,omitempty"`
	Type    string `json:"type,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// Shortcut is a normalized shortcut descriptor as emitted in the document.
type Shortcut struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Icons       []Icon `json:"icons,omitempty"`
}

// ValidationResult reports advisory findings about an assembled document.
// Findings never block emission; IsValid is true iff Errors is empty.
// Warnings carry supplementary advisories (schema findings, suspect
// language tags) that do not affect IsValid.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
