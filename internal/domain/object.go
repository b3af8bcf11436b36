package domain

import (
	"github.com/google/uuid"
)

// ObjectType is the polymorphic discriminator of a statement object.
type ObjectType string

const (
	ObjectTypeActivity     ObjectType = "Activity"
	ObjectTypeAgent        ObjectType = "Agent"
	ObjectTypeGroup        ObjectType = "Group"
	ObjectTypeSubStatement ObjectType = "SubStatement"
	ObjectTypeStatementRef ObjectType = "StatementRef"
)

func (t ObjectType) String() string { return string(t) }

func (t ObjectType) IsValid() bool {
	switch t {
	case ObjectTypeActivity, ObjectTypeAgent, ObjectTypeGroup,
		ObjectTypeSubStatement, ObjectTypeStatementRef:
		return true
	}
	return false
}

// Object is the thing that was acted on: an activity, an agent or group, a
// reference to another statement, or a nested sub-statement. The id is the
// caller-supplied IRI for every type except SubStatement, whose id is
// generated and whose StatementID points at the synthesized nested
// statement.
type Object struct {
	ID          string
	Type        ObjectType
	StatementID *uuid.UUID
	Definition  *ActivityDefinition
}

// NewSubStatementID generates the synthetic identity of a sub-statement
// object. Sub-statements are never caller-identified and never reused.
func NewSubStatementID() string {
	return "urn:uuid:" + uuid.NewString()
}

// Validate checks the object's type and id requirement.
func (o *Object) Validate() error {
	if !o.Type.IsValid() {
		return NewInvariantError("object.objectType", o.Type.String(),
			"must be Activity, Agent, Group, SubStatement or StatementRef")
	}
	if o.ID == "" {
		return NewStructuralError("object.id", "required")
	}
	return nil
}
