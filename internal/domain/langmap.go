package domain

import (
	"regexp"
	"sort"
	"strings"
)

// languageTagRe matches a 2-letter lowercase language code, optionally
// followed by a hyphen and a 2-letter uppercase region code ("en", "en-US").
// The region is optional for every language map in the system, including
// activity definition descriptions.
var languageTagRe = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// LanguageMap maps a language tag to localized text for the same concept.
type LanguageMap map[string]string

// Validate checks every key against the language-tag pattern. All invalid
// keys are reported in a single format error.
func (m LanguageMap) Validate(field string) error {
	var invalid []string
	for key := range m {
		if !languageTagRe.MatchString(key) {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	sort.Strings(invalid)
	return NewFormatError(field, strings.Join(invalid, ", "), "invalid language map keys")
}

// ForLocale returns the text whose key contains the given locale, falling
// back to the lexicographically first entry when no key matches. The empty
// string means the map is empty.
func (m LanguageMap) ForLocale(locale string) string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(key, locale) {
			return m[key]
		}
	}
	if len(keys) > 0 {
		return m[keys[0]]
	}
	return ""
}

// Merge copies every entry of other into m, overriding existing keys.
func (m LanguageMap) Merge(other LanguageMap) {
	for key, value := range other {
		m[key] = value
	}
}
