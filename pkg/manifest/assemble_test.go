/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package manifest

import (
	"strings"
	"testing"
)

func TestResolveIconPath(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		iconsDir string
		expected string
	}{
		{"empty base returns src", "icon.png", "", "icon.png"},
		{"empty base trims src", "  icon.png  ", "", "icon.png"},
		{"plain base", "icon.png", "icons", "/icons/icon.png"},
		{"base with leading slash", "icon.png", "/icons", "/icons/icon.png"},
		{"base with trailing slash", "icon.png", "icons/", "/icons/icon.png"},
		{"base with both slashes", "icon.png", "/icons/", "/icons/icon.png"},
		{"src with leading slash", "/icon.png", "icons", "/icons/icon.png"},
		{"nested base", "icon.png", "assets/icons", "/assets/icons/icon.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveIconPath(tt.src, tt.iconsDir); got != tt.expected {
				t.Errorf("ResolveIconPath(%q, %q) = %q, expected %q", tt.src, tt.iconsDir, got, tt.expected)
			}
		})
	}
}

func TestAssembleStringDefaults(t *testing.T) {
	a := NewAssembler()
	m := a.Assemble(Config{Name: "Test App", StartURL: "/"})

	if m.Name != "Test App" {
		t.Errorf("name = %q, expected %q", m.Name, "Test App")
	}
	if m.StartURL != "/" {
		t.Errorf("start_url = %q, expected /", m.StartURL)
	}
	if m.Scope != "/" {
		t.Errorf("scope = %q, expected /", m.Scope)
	}
	if m.Display != "standalone" {
		t.Errorf("display = %q, expected standalone", m.Display)
	}
	if len(m.Icons) == 0 {
		t.Error("expected non-empty default icon set")
	}
}

func TestAssembleDisplayEnum(t *testing.T) {
	a := NewAssembler()
	tests := []struct {
		input    string
		expected string
	}{
		{"fullscreen", "fullscreen"},
		{"Fullscreen", "fullscreen"},
		{"MINIMAL-UI", "minimal-ui"},
		{"browser", "browser"},
		{"kiosk", "standalone"},
		{"", "standalone"},
		{"  standalone  ", "standalone"},
	}

	for _, tt := range tests {
		m := a.Assemble(Config{Display: tt.input})
		if m.Display != tt.expected {
			t.Errorf("display %q assembled to %q, expected %q", tt.input, m.Display, tt.expected)
		}
	}
}

func TestAssembleOrientationEnum(t *testing.T) {
	a := NewAssembler()
	tests := []struct {
		input    string
		expected string
	}{
		{"portrait-primary", "portrait-primary"},
		{"LANDSCAPE", "landscape"},
		{"upside-down", "any"},
		{"", "any"},
	}

	for _, tt := range tests {
		m := a.Assemble(Config{Orientation: tt.input})
		if m.Orientation != tt.expected {
			t.Errorf("orientation %q assembled to %q, expected %q", tt.input, m.Orientation, tt.expected)
		}
	}
}

func TestAssembleDirOmission(t *testing.T) {
	a := NewAssembler()

	// Invalid and absent dir values are omitted, never defaulted.
	for _, input := range []string{"", "sideways", "LTR "} {
		m := a.Assemble(Config{Dir: input})
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "ltr", "rtl", "auto":
			if m.Dir == "" {
				t.Errorf("dir %q should survive", input)
			}
		default:
			if m.Dir != "" {
				t.Errorf("dir %q assembled to %q, expected omission", input, m.Dir)
			}
		}
	}

	m := a.Assemble(Config{Dir: "RTL"})
	if m.Dir != "rtl" {
		t.Errorf("dir RTL assembled to %q, expected rtl", m.Dir)
	}
}

func TestAssembleIconNormalization(t *testing.T) {
	a := NewAssembler()
	m := a.Assemble(Config{
		IconsDir: "icons",
		Icons: []IconInput{
			{Src: "/app.png", Sizes: "192x192", Type: "image/png"},
			{Src: "   "}, // dropped: no resolvable src
			{Src: "mask.png", Purpose: "any maskable extra"},
			{Src: "mono.png", Purpose: "bogus"},
		},
	})

	if len(m.Icons) != 3 {
		t.Fatalf("expected 3 surviving icons, got %d", len(m.Icons))
	}
	if m.Icons[0].Src != "/icons/app.png" {
		t.Errorf("icon src = %q, expected /icons/app.png", m.Icons[0].Src)
	}
	if m.Icons[1].Purpose != "any maskable" {
		t.Errorf("purpose = %q, expected %q", m.Icons[1].Purpose, "any maskable")
	}
	if m.Icons[2].Purpose != "" {
		t.Errorf("purpose = %q, expected omission for unrecognized tokens", m.Icons[2].Purpose)
	}
}

func TestAssembleDefaultIconsUseIconsDir(t *testing.T) {
	a := NewAssembler()
	m := a.Assemble(Config{IconsDir: "static/icons"})

	if len(m.Icons) == 0 {
		t.Fatal("expected default icons")
	}
	for _, icon := range m.Icons {
		if !strings.HasPrefix(icon.Src, "/static/icons/") {
			t.Errorf("default icon %q not resolved through icons dir", icon.Src)
		}
	}
}

func TestAssembleShortcuts(t *testing.T) {
	a := NewAssembler()

	// Absent input: no shortcuts key at all.
	m := a.Assemble(Config{})
	if m.Shortcuts != nil {
		t.Error("absent shortcuts input should yield no shortcuts key")
	}

	// Explicitly empty input: empty sequence carried through.
	m = a.Assemble(Config{Shortcuts: []ShortcutInput{}})
	if m.Shortcuts == nil {
		t.Fatal("empty shortcuts input should yield an empty sequence, not omission")
	}
	if len(*m.Shortcuts) != 0 {
		t.Errorf("expected empty shortcuts, got %d", len(*m.Shortcuts))
	}

	m = a.Assemble(Config{
		IconsDir: "icons",
		Shortcuts: []ShortcutInput{
			{Name: "Inbox", URL: "/inbox", Icons: []IconInput{{Src: "inbox.png"}}},
			{Name: "", URL: "/dropped"},
			{Name: "Dropped", URL: "  "},
		},
	})
	if m.Shortcuts == nil || len(*m.Shortcuts) != 1 {
		t.Fatalf("expected 1 surviving shortcut, got %v", m.Shortcuts)
	}
	sc := (*m.Shortcuts)[0]
	if sc.Name != "Inbox" || sc.URL != "/inbox" {
		t.Errorf("unexpected shortcut: %+v", sc)
	}
	if len(sc.Icons) != 1 || sc.Icons[0].Src != "/icons/inbox.png" {
		t.Errorf("nested icon not normalized: %+v", sc.Icons)
	}
}

func TestAssembleCategories(t *testing.T) {
	a := NewAssembler()

	m := a.Assemble(Config{})
	if m.Categories != nil {
		t.Error("absent categories input should yield no categories key")
	}

	m = a.Assemble(Config{Categories: []string{" news ", "", "social"}})
	if m.Categories == nil {
		t.Fatal("expected categories key")
	}
	got := *m.Categories
	if len(got) != 2 || got[0] != "news" || got[1] != "social" {
		t.Errorf("unexpected categories: %v", got)
	}
}

func TestAssembleOptionalStrings(t *testing.T) {
	a := NewAssembler()

	m := a.Assemble(Config{})
	if m.Description != "" || m.Lang != "" || m.ID != "" {
		t.Errorf("optional fields should be empty when absent: %+v", m)
	}

	m = a.Assemble(Config{Description: "  An app  ", Lang: "en-US", ID: "/app"})
	if m.Description != "An app" {
		t.Errorf("description = %q", m.Description)
	}
	if m.Lang != "en-US" {
		t.Errorf("lang = %q", m.Lang)
	}
	if m.ID != "/app" {
		t.Errorf("id = %q", m.ID)
	}
}

func TestEncode(t *testing.T) {
	a := NewAssembler()
	m := a.Assemble(Config{Name: "Test App", Shortcuts: []ShortcutInput{}})

	data, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "{\n  \"name\": \"Test App\"") {
		t.Errorf("unexpected serialization prefix: %q", out[:40])
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("expected trailing newline after document")
	}
	if !strings.Contains(out, "\"shortcuts\": []") {
		t.Error("empty shortcuts sequence should be emitted")
	}
	if strings.Contains(out, "\"dir\"") {
		t.Error("absent dir should not be emitted")
	}
	// name must precede start_url which must precede icons
	if !(strings.Index(out, "\"name\"") < strings.Index(out, "\"start_url\"") &&
		strings.Index(out, "\"start_url\"") < strings.Index(out, "\"icons\"")) {
		t.Error("emission order broken")
	}
}
