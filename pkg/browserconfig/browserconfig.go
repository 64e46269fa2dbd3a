// Package browserconfig generates the browserconfig.xml consumed by
// Windows tile pinning, derived from the assembled manifest icon list.
package browserconfig

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fulmenhq/webman/pkg/manifest"
)

// Tile slots recognized by browserconfig, keyed by the icon sizes value
// that fills them.
var tileSlots = []struct {
	element string
	sizes   string
}{
	{"square70x70logo", "70x70"},
	{"square150x150logo", "150x150"},
	{"wide310x150logo", "310x150"},
	{"square310x310logo", "310x310"},
}

// Generate builds browserconfig.xml from the icon list and tile color.
// Icons fill tile slots by exact sizes match; when no icon matches any
// slot, the first icon fills square150x150logo so the document is never
// empty of imagery. Output is 2-space indented.
func Generate(icons []manifest.Icon, tileColor string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("browserconfig")
	msapp := root.CreateElement("msapplication")
	tile := msapp.CreateElement("tile")

	filled := false
	for _, slot := range tileSlots {
		if icon := pickIcon(icons, slot.sizes); icon != nil {
			tile.CreateElement(slot.element).CreateAttr("src", icon.Src)
			filled = true
		}
	}
	if !filled && len(icons) > 0 {
		tile.CreateElement("square150x150logo").CreateAttr("src", icons[0].Src)
	}

	if color := strings.TrimSpace(tileColor); color != "" {
		tile.CreateElement("TileColor").SetText(color)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func pickIcon(icons []manifest.Icon, sizes string) *manifest.Icon {
	for i := range icons {
		if strings.EqualFold(strings.TrimSpace(icons[i].Sizes), sizes) {
			return &icons[i]
		}
	}
	return nil
}
