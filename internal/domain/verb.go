package domain

import "strings"

// Verb defines the action between an actor and an activity. The IRI is the
// primary identity key; reading systems infer meaning from it.
type Verb struct {
	ID      string
	Display LanguageMap
}

// VerbDisplay looks up the registry display text for a verb IRI.
func VerbDisplay(id string) (string, bool) {
	display, ok := verbsList[id]
	return display, ok
}

// DefaultVerbDisplay returns the registry display text for the IRI, or the
// IRI's last path segment when the verb is not in the registry.
func DefaultVerbDisplay(id string) string {
	if display, ok := verbsList[id]; ok {
		return display
	}
	trimmed := strings.TrimRight(id, "/")
	return trimmed[strings.LastIndex(trimmed, "/")+1:]
}

// NewVerb builds a verb from its IRI and an optional caller-supplied display
// map. The display defaults to {"en-US": <registry lookup or last path
// segment>}; caller entries override and extend the default.
func NewVerb(id string, display LanguageMap) (*Verb, error) {
	return NewVerbLocalized(id, display, "en-US")
}

// NewVerbLocalized is NewVerb with the default display stored under the
// given locale instead of "en-US".
func NewVerbLocalized(id string, display LanguageMap, locale string) (*Verb, error) {
	if id == "" {
		return nil, NewStructuralError("verb.id", "required")
	}
	if !IsAbsoluteHTTPURI(id) {
		return nil, NewFormatError("verb.id", id, "must be an absolute http(s) URI")
	}
	if locale == "" {
		locale = "en-US"
	}

	merged := LanguageMap{locale: DefaultVerbDisplay(id)}
	merged.Merge(display)
	if err := merged.Validate("verb.display"); err != nil {
		return nil, err
	}

	return &Verb{ID: id, Display: merged}, nil
}
