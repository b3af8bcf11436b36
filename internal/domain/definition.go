package domain

import "github.com/google/uuid"

// ActivityDefinition carries the optional metadata of an Activity object:
// localized name and description, the activity type IRI, a moreInfo link,
// and arbitrary extensions.
type ActivityDefinition struct {
	ID          uuid.UUID
	ObjectID    string
	Name        LanguageMap
	Description LanguageMap
	Type        *string
	MoreInfo    *string
	Extensions  ExtensionMap
}

// Validate checks the language maps, the type and moreInfo IRIs, and the
// extensions map.
func (d *ActivityDefinition) Validate() error {
	if err := d.Name.Validate("definition.name"); err != nil {
		return err
	}
	if err := d.Description.Validate("definition.description"); err != nil {
		return err
	}
	if notBlank(d.Type) && !IsAbsoluteHTTPURI(*d.Type) {
		return NewFormatError("definition.type", *d.Type, "must be an absolute http(s) URI")
	}
	if notBlank(d.MoreInfo) && !IsAbsoluteHTTPURI(*d.MoreInfo) {
		return NewFormatError("definition.moreInfo", *d.MoreInfo, "must be an absolute http(s) URI")
	}
	return d.Extensions.Validate("definition.extensions")
}
