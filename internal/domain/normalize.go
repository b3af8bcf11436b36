package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameTitle = cases.Title(language.Und)

// isLatinLetter reports whether r belongs to the Latin ranges kept by name
// normalization: ASCII letters plus the accented ranges À-Ö, Ø-ö, ø-ÿ and œ.
func isLatinLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0x00C0 && r <= 0x00D6: // À-Ö
		return true
	case r >= 0x00D8 && r <= 0x00F6: // Ø-ö
		return true
	case r >= 0x00F8 && r <= 0x00FF: // ø-ÿ
		return true
	case r == 'œ' || r == 'Œ':
		return true
	}
	return false
}

// NormalizeName prepares an actor name for storage:
//   - strips every rune that is not a Latin letter, space, or hyphen
//   - compresses runs of whitespace into one space and trims the ends
//   - title-cases each remaining word
//
// "john d03" becomes "John D"; accented names keep their diacritics.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isLatinLetter(r) || r == ' ' || r == '-' {
			b.WriteRune(r)
		}
	}

	stripped := strings.Join(strings.Fields(b.String()), " ")
	if stripped == "" {
		return ""
	}

	return nameTitle.String(strings.ToLower(stripped))
}

// NormalizeMbox trims surrounding whitespace and lowercases an mbox value
// before validation and lookup.
func NormalizeMbox(mbox string) string {
	return strings.ToLower(strings.TrimSpace(mbox))
}
