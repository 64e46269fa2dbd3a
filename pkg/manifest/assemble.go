package manifest

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Assembler builds a Manifest from a Config, applying the defaults table,
// enum validation, and icon path resolution.
type Assembler struct {
	defaults Defaults
}

// NewAssembler returns an Assembler with the standard defaults.
func NewAssembler() *Assembler {
	return &Assembler{defaults: DefaultSettings()}
}

// NewAssemblerWithDefaults returns an Assembler with a caller-supplied
// defaults table.
func NewAssemblerWithDefaults(d Defaults) *Assembler {
	return &Assembler{defaults: d}
}

// Assemble builds the manifest document. It never fails: malformed entries
// are dropped and invalid enum values fall back to their defaults, except
// dir, which is omitted entirely when absent or invalid.
func (a *Assembler) Assemble(cfg Config) Manifest {
	m := Manifest{
		Name:            strings.TrimSpace(cfg.Name),
		ShortName:       strings.TrimSpace(cfg.ShortName),
		Description:     strings.TrimSpace(cfg.Description),
		StartURL:        stringOrDefault(cfg.StartURL, a.defaults.StartURL),
		ID:              strings.TrimSpace(cfg.ID),
		Scope:           stringOrDefault(cfg.Scope, a.defaults.Scope),
		Display:         enumOrDefault(cfg.Display, displayValues, a.defaults.Display),
		Orientation:     enumOrDefault(cfg.Orientation, orientationValues, a.defaults.Orientation),
		ThemeColor:      stringOrDefault(cfg.ThemeColor, a.defaults.ThemeColor),
		BackgroundColor: stringOrDefault(cfg.BackgroundColor, a.defaults.BackgroundColor),
		Lang:            strings.TrimSpace(cfg.Lang),
		Dir:             enumOrEmpty(cfg.Dir, dirValues),
	}

	iconInputs := cfg.Icons
	if len(iconInputs) == 0 {
		iconInputs = a.defaults.Icons
	}
	m.Icons = normalizeIcons(iconInputs, cfg.IconsDir)

	// nil means the key was absent; an empty sequence is carried through.
	if cfg.Shortcuts != nil {
		shortcuts := normalizeShortcuts(cfg.Shortcuts, cfg.IconsDir)
		m.Shortcuts = &shortcuts
	}
	if cfg.Categories != nil {
		categories := make([]string, 0, len(cfg.Categories))
		for _, c := range cfg.Categories {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				categories = append(categories, trimmed)
			}
		}
		m.Categories = &categories
	}

	return m
}

// ResolveIconPath joins a declared icon path with the icons base directory.
// With an empty base the trimmed path is returned unchanged; otherwise the
// result is "/<base>/<path>" with exactly one separator at each joint.
// Pure string manipulation; the filesystem is never consulted.
func ResolveIconPath(src, iconsDir string) string {
	trimmed := strings.TrimSpace(src)
	base := strings.TrimSpace(iconsDir)
	if base == "" {
		return trimmed
	}
	stripped := strings.TrimPrefix(trimmed, "/")
	prefix := "/" + strings.Trim(base, "/")
	return prefix + "/" + stripped
}

func normalizeIcons(inputs []IconInput, iconsDir string) []Icon {
	icons := make([]Icon, 0, len(inputs))
	for _, in := range inputs {
		src := strings.TrimSpace(in.Src)
		if src == "" {
			continue
		}
		icons = append(icons, Icon{
			Src:     ResolveIconPath(src, iconsDir),
			Sizes:   strings.TrimSpace(in.Sizes),
			Type:    strings.TrimSpace(in.Type),
			Purpose: normalizePurpose(in.Purpose),
		})
	}
	return icons
}

// normalizePurpose lowercases and splits the purpose token set, keeps only
// recognized tokens in their original relative order, and rejoins them.
// An empty filtered set yields an empty string, which omits the key.
func normalizePurpose(purpose string) string {
	tokens := strings.Fields(strings.ToLower(purpose))
	kept := tokens[:0]
	for _, tok := range tokens {
		if purposeValues[tok] {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

func normalizeShortcuts(inputs []ShortcutInput, iconsDir string) []Shortcut {
	shortcuts := make([]Shortcut, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		url := strings.TrimSpace(in.URL)
		if name == "" || url == "" {
			continue
		}
		sc := Shortcut{
			Name:        name,
			ShortName:   strings.TrimSpace(in.ShortName),
			Description: strings.TrimSpace(in.Description),
			URL:         url,
		}
		if len(in.Icons) > 0 {
			sc.Icons = normalizeIcons(in.Icons, iconsDir)
		}
		shortcuts = append(shortcuts, sc)
	}
	return shortcuts
}

func stringOrDefault(s, fallback string) string {
	if trimmed := strings.TrimSpace(s); trimmed != "" {
		return trimmed
	}
	return fallback
}

func enumOrDefault(s string, allowed map[string]bool, fallback string) string {
	if v := strings.ToLower(strings.TrimSpace(s)); allowed[v] {
		return v
	}
	return fallback
}

func enumOrEmpty(s string, allowed map[string]bool) string {
	if v := strings.ToLower(strings.TrimSpace(s)); allowed[v] {
		return v
	}
	return ""
}

// Encode serializes the manifest with two-space indentation and a trailing
// newline, suitable for writing straight to disk.
func Encode(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
