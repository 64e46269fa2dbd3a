package manifest

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validator inspects an assembled document for recommended-but-missing
// fields and discouraged value combinations. All findings are advisory:
// validation never mutates the document and never blocks emission.
type Validator struct{}

// NewValidator returns a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate reports advisory findings for the document. IsValid is true
// iff no errors were found; warnings do not affect it.
func (v *Validator) Validate(m Manifest) ValidationResult {
	result := ValidationResult{}

	if m.Name == "" && m.ShortName == "" {
		result.Errors = append(result.Errors, "manifest should have either a name or a short_name")
	}

	if len(m.Icons) == 0 {
		result.Errors = append(result.Errors, "manifest should include at least one icon")
	}
	for i, icon := range m.Icons {
		if icon.Src == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("icon at index %d is missing required field src", i))
		}
		if hasPurpose(icon.Purpose, "any") && hasPurpose(icon.Purpose, "maskable") {
			result.Errors = append(result.Errors, fmt.Sprintf("icon at index %d combines purposes any and maskable; declaring separate icons per purpose is recommended", i))
		}
	}

	if m.Shortcuts != nil {
		for i, sc := range *m.Shortcuts {
			if sc.Name == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("shortcut at index %d is missing required field name", i))
			}
			if sc.URL == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("shortcut at index %d is missing required field url", i))
			}
		}
	}

	if m.Lang != "" {
		if _, err := language.Parse(m.Lang); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("lang %q is not a well-formed BCP 47 language tag", m.Lang))
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func hasPurpose(purpose, token string) bool {
	for _, tok := range strings.Fields(purpose) {
		if tok == token {
			return true
		}
	}
	return false
}
