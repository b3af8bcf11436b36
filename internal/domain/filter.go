package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// emailRe matches a bare email address (no mailto: prefix).
var emailRe = regexp.MustCompile(`^[^@\s]+@(?:[-a-z0-9]+\.)+[a-z]{2,}$`)

// ActorQuery selects statements by one actor identifier. Exactly one field
// must be set.
type ActorQuery struct {
	Email       *string
	Mbox        *string
	MboxSHA1Sum *string
	OpenID      *string
	HomePage    *string
}

// Validate checks that exactly one identifier is populated and that email
// and mbox values are well-formed.
func (q *ActorQuery) Validate() error {
	populated := 0
	for _, field := range []*string{q.Email, q.Mbox, q.MboxSHA1Sum, q.OpenID, q.HomePage} {
		if notBlank(field) {
			populated++
		}
	}
	if populated != 1 {
		return NewInvariantError("query", "", "exactly one actor identifier must be provided")
	}

	if notBlank(q.Email) && !emailRe.MatchString(*q.Email) {
		return NewFormatError("query.email", *q.Email, "malformed email")
	}
	if notBlank(q.Mbox) && !mboxRe.MatchString(*q.Mbox) {
		return NewFormatError("query.mbox", *q.Mbox, "malformed mbox")
	}
	return nil
}

// Mbox-equivalent value of the query: an email is queried as its mailto form.
func (q *ActorQuery) NormalizedMbox() *string {
	if notBlank(q.Email) {
		mbox := "mailto:" + *q.Email
		return &mbox
	}
	return q.Mbox
}

// StatementFilter contains filtering/pagination parameters for statement
// listings.
type StatementFilter struct {
	// ActorID restricts to statements made by one actor.
	ActorID *uuid.UUID

	// VerbID restricts to one verb IRI.
	VerbID *string

	// ObjectID restricts to one object IRI.
	ObjectID *string

	// Since / Until bound created_at (inclusive / exclusive).
	Since *time.Time
	Until *time.Time

	// SortOrder: "ASC" or "DESC" on created_at. Default: "DESC".
	SortOrder string

	// Limit is the maximum number of statements to return. Default: 50, max: 500.
	Limit int

	// Offset is the number of statements to skip.
	Offset int
}

const (
	statementDefaultLimit = 50
	statementMaxLimit     = 500

	SortOrderASC  = "ASC"
	SortOrderDESC = "DESC"
)

// Normalize applies defaults and clamps values.
func (f *StatementFilter) Normalize() {
	switch f.SortOrder {
	case SortOrderASC, SortOrderDESC:
		// valid
	default:
		f.SortOrder = SortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = statementDefaultLimit
	}
	if f.Limit > statementMaxLimit {
		f.Limit = statementMaxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
