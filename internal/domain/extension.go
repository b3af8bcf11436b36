package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ExtensionOwner identifies the kind of entity an extension row belongs to.
type ExtensionOwner string

const (
	ExtensionOwnerDefinition ExtensionOwner = "definition"
	ExtensionOwnerResult     ExtensionOwner = "result"
	ExtensionOwnerContext    ExtensionOwner = "context"
)

func (o ExtensionOwner) String() string { return string(o) }

func (o ExtensionOwner) IsValid() bool {
	switch o {
	case ExtensionOwnerDefinition, ExtensionOwnerResult, ExtensionOwnerContext:
		return true
	}
	return false
}

// Extension is one (IRI, value) pair attached to an activity definition,
// result, or context. The value is stored serialized as text.
type Extension struct {
	ID        uuid.UUID
	OwnerKind ExtensionOwner
	OwnerID   uuid.UUID
	IRI       string
	Value     string
}

// ExtensionMap is the wire form of an extensions object: arbitrary values
// keyed by extension IRI.
type ExtensionMap map[string]any

// Validate checks that every key is an absolute http(s) URI and every value
// is non-null. The failing key is named in the error.
func (m ExtensionMap) Validate(field string) error {
	for key, value := range m {
		if !IsAbsoluteHTTPURI(key) {
			return NewFormatError(field, key, "extension key must be an absolute http(s) URI")
		}
		if value == nil {
			return NewInvariantError(field, key, "extension value must not be null")
		}
	}
	return nil
}

// SerializeExtensionValue renders an extension value for storage: structured
// values are JSON-encoded, plain strings kept as-is, everything else
// stringified.
func SerializeExtensionValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Rows converts the map into Extension rows for the given owner, with
// serialized values. Validate must have been called first.
func (m ExtensionMap) Rows(kind ExtensionOwner, ownerID uuid.UUID) []Extension {
	rows := make([]Extension, 0, len(m))
	for iri, value := range m {
		rows = append(rows, Extension{
			ID:        uuid.New(),
			OwnerKind: kind,
			OwnerID:   ownerID,
			IRI:       iri,
			Value:     SerializeExtensionValue(value),
		})
	}
	return rows
}
