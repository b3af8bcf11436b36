package domain

import "github.com/google/uuid"

// ContextActivityType tags a context activity as parent, grouping, category
// or other.
type ContextActivityType string

const (
	ContextActivityParent   ContextActivityType = "parent"
	ContextActivityGrouping ContextActivityType = "grouping"
	ContextActivityCategory ContextActivityType = "category"
	ContextActivityOther    ContextActivityType = "other"
)

func (t ContextActivityType) String() string { return string(t) }

func (t ContextActivityType) IsValid() bool {
	switch t {
	case ContextActivityParent, ContextActivityGrouping,
		ContextActivityCategory, ContextActivityOther:
		return true
	}
	return false
}

// ContextActivity joins a context to an activity object under one of the
// four tags.
type ContextActivity struct {
	ID        uuid.UUID
	ContextID uuid.UUID
	ObjectID  string
	Type      ContextActivityType
}

// Context carries the optional metadata of a statement: instructor and team
// actors, a back-reference to another statement, tagged related activities,
// and free-form fields.
type Context struct {
	ID           uuid.UUID
	StatementID  uuid.UUID
	InstructorID *uuid.UUID
	TeamID       *uuid.UUID
	StatementRef *uuid.UUID
	Registration *string
	Revision     *string
	Platform     *string
	Language     *string
	Activities   []ContextActivity
	Extensions   ExtensionMap
}

// Validate checks the context activity tags and the extensions map.
func (c *Context) Validate() error {
	for _, activity := range c.Activities {
		if !activity.Type.IsValid() {
			return NewInvariantError("context.contextActivities", activity.Type.String(),
				"must be parent, grouping, category or other")
		}
	}
	return c.Extensions.Validate("context.extensions")
}
