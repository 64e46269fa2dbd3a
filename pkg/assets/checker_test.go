/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fulmenhq/webman/pkg/manifest"
)

func TestCheckMissingIcon(t *testing.T) {
	dir := t.TempDir()
	c := NewChecker()

	icons := []manifest.Icon{
		{Src: "/icon-192x192.png", Sizes: "192x192", Type: "image/png"},
	}
	result := c.Check(icons, dir, "icons")

	if result.Valid {
		t.Error("expected valid=false for missing icon")
	}
	if result.Checked != 1 {
		t.Errorf("checked = %d, expected 1", result.Checked)
	}
	if len(result.Missing) != 1 {
		t.Fatalf("missing = %d entries, expected 1", len(result.Missing))
	}
	m := result.Missing[0]
	if m.Src != "/icon-192x192.png" || m.Sizes != "192x192" || m.Type != "image/png" {
		t.Errorf("missing entry does not mirror icon: %+v", m)
	}
	if len(result.CheckedFiles) != 1 || result.CheckedFiles[0].Exists {
		t.Errorf("checked_files should record the inspection: %+v", result.CheckedFiles)
	}
}

func TestCheckExistingIcon(t *testing.T) {
	dir := t.TempDir()
	iconDir := filepath.Join(dir, "icons")
	if err := os.MkdirAll(iconDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(iconDir, "app.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewChecker()
	result := c.Check([]manifest.Icon{{Src: "/app.png"}}, dir, "icons")

	if !result.Valid {
		t.Errorf("expected valid=true, missing: %+v", result.Missing)
	}
	if result.Checked != 1 || len(result.CheckedFiles) != 1 {
		t.Errorf("unexpected counts: %+v", result)
	}
	if !result.CheckedFiles[0].Exists {
		t.Error("existing file should carry exists=true")
	}
}

func TestCheckSkipsIconsWithoutSrc(t *testing.T) {
	c := NewChecker()
	result := c.Check([]manifest.Icon{{Src: ""}, {Src: "   "}}, t.TempDir(), "")

	if result.Checked != 0 {
		t.Errorf("icons without src must not be counted, checked = %d", result.Checked)
	}
	if len(result.CheckedFiles) != 0 || len(result.Missing) != 0 {
		t.Errorf("icons without src must not be reported: %+v", result)
	}
	if !result.Valid {
		t.Error("nothing checked means nothing missing")
	}
}

func TestCheckLeadingSeparatorHandling(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plain.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewChecker()

	// With and without a leading separator resolve to the same path.
	for _, src := range []string{"plain.png", "/plain.png"} {
		result := c.Check([]manifest.Icon{{Src: src}}, dir, "")
		if !result.Valid {
			t.Errorf("src %q should resolve to existing file, got %+v", src, result.Missing)
		}
	}
}
