package domain

import (
	"time"

	"github.com/google/uuid"
)

// Statement is the aggregate root: "Actor did Verb to Object [with Result]
// [in Context]". Actor, verb and object are required and must each be valid
// on their own; result and context are optional.
type Statement struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	VerbID    string
	ObjectID  string
	Timestamp *time.Time
	CreatedAt time.Time

	Actor   *Actor
	Verb    *Verb
	Object  *Object
	Result  *Result
	Context *Context
}

// DayCount is one bucket of the per-day statement activity aggregate.
type DayCount struct {
	Day   time.Time
	Count int
}

// Validate re-checks the loaded actor, verb and object. This is the
// defensive statement-level pass that runs just before persistence.
func (s *Statement) Validate() error {
	if s.Actor == nil {
		return NewStructuralError("statement.actor", "required")
	}
	if err := s.Actor.Validate(); err != nil {
		return err
	}

	if s.Verb == nil {
		return NewStructuralError("statement.verb", "required")
	}
	if _, err := NewVerb(s.Verb.ID, s.Verb.Display); err != nil {
		return err
	}

	if s.Object == nil {
		return NewStructuralError("statement.object", "required")
	}
	return s.Object.Validate()
}
