// Package snippet renders the recommended head markup block for a
// manifest: the link tag plus the companion meta and icon tags.
package snippet

import (
	"strings"

	"github.com/aymerick/raymond"
	"github.com/fulmenhq/webman/pkg/manifest"
)

const headTemplate = `<link rel="manifest" href="{{href}}"{{#if useCredentials}} crossorigin="use-credentials"{{/if}}>
{{#if themeColor}}<meta name="theme-color" content="{{themeColor}}">
{{/if}}{{#each touchIcons}}<link rel="apple-touch-icon" sizes="{{sizes}}" href="{{src}}">
{{/each}}`

// Render produces the head snippet for the document and manifest filename.
// Touch icon links are emitted for every icon that declares sizes.
func Render(m manifest.Manifest, filename string, useCredentials bool) (string, error) {
	touchIcons := make([]map[string]string, 0, len(m.Icons))
	for _, icon := range m.Icons {
		if icon.Sizes == "" {
			continue
		}
		touchIcons = append(touchIcons, map[string]string{
			"src":   icon.Src,
			"sizes": icon.Sizes,
		})
	}

	ctx := map[string]interface{}{
		"href":           "/" + strings.TrimPrefix(strings.TrimSpace(filename), "/"),
		"useCredentials": useCredentials,
		"themeColor":     m.ThemeColor,
		"touchIcons":     touchIcons,
	}

	return raymond.Render(headTemplate, ctx)
}
