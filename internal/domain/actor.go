package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ActorObjectType distinguishes individual agents from groups.
type ActorObjectType string

const (
	ActorObjectTypeAgent ActorObjectType = "Agent"
	ActorObjectTypeGroup ActorObjectType = "Group"
)

func (t ActorObjectType) String() string { return string(t) }

func (t ActorObjectType) IsValid() bool {
	switch t {
	case ActorObjectTypeAgent, ActorObjectTypeGroup:
		return true
	}
	return false
}

var (
	// mboxRe matches "mailto:" followed by a plausible email address.
	mboxRe = regexp.MustCompile(`^mailto:[^@\s]+@(?:[-a-z0-9]+\.)+[a-z]{2,}$`)
	// sha1Re matches "sha1:" followed by a 40-character hex digest.
	sha1Re = regexp.MustCompile(`(?i)^sha1:[0-9a-f]{40}$`)
)

// Actor identifies who performed an action. Exactly one inverse functional
// identifier (mbox, mbox_sha1sum, openid, or account) must be populated.
type Actor struct {
	ID          uuid.UUID
	ObjectType  ActorObjectType
	Name        *string
	Mbox        *string
	MboxSHA1Sum *string
	OpenID      *string
	AccountID   *uuid.UUID
	Account     *Account
	CreatedAt   time.Time
}

// ActorIFI is the natural lookup key of an actor: whichever subset of the
// identifier fields is populated. Two actors are the same iff these match.
type ActorIFI struct {
	Mbox        *string
	MboxSHA1Sum *string
	OpenID      *string
	AccountID   *uuid.UUID
}

// String renders the populated identifier, for error messages and logs.
func (k ActorIFI) String() string {
	switch {
	case k.Mbox != nil:
		return *k.Mbox
	case k.MboxSHA1Sum != nil:
		return *k.MboxSHA1Sum
	case k.OpenID != nil:
		return *k.OpenID
	case k.AccountID != nil:
		return "account:" + k.AccountID.String()
	}
	return "<no identifier>"
}

// IFI returns the actor's natural key for find-or-create lookups.
func (a *Actor) IFI() ActorIFI {
	return ActorIFI{
		Mbox:        a.Mbox,
		MboxSHA1Sum: a.MboxSHA1Sum,
		OpenID:      a.OpenID,
		AccountID:   a.AccountID,
	}
}

// HasIFI reports whether any inverse functional identifier is populated.
func (a *Actor) HasIFI() bool {
	return notBlank(a.Mbox) || notBlank(a.MboxSHA1Sum) || notBlank(a.OpenID) ||
		a.AccountID != nil || a.Account != nil
}

// Normalize applies defaults and canonical forms before validation:
// the object type defaults to Agent, the name is stripped and title-cased,
// and the mbox is trimmed and lowercased.
func (a *Actor) Normalize() {
	if a.ObjectType == "" {
		a.ObjectType = ActorObjectTypeAgent
	}
	if notBlank(a.Name) {
		name := NormalizeName(*a.Name)
		a.Name = &name
	}
	if notBlank(a.Mbox) {
		mbox := NormalizeMbox(*a.Mbox)
		a.Mbox = &mbox
	}
}

// Validate checks the actor. IFI presence is checked first: its absence is
// a distinct, higher-priority error than any format problem. Format checks
// then run in order and fail fast on the first malformed value.
func (a *Actor) Validate() error {
	if !a.HasIFI() {
		return NewInvariantError("actor", "",
			"an inverse functional identifier (mbox, mbox_sha1sum, openid or account) must be present")
	}

	if notBlank(a.Mbox) && !mboxRe.MatchString(*a.Mbox) {
		return NewFormatError("actor.mbox", *a.Mbox, "malformed mbox")
	}

	if notBlank(a.MboxSHA1Sum) && !sha1Re.MatchString(*a.MboxSHA1Sum) {
		return NewFormatError("actor.mbox_sha1sum", *a.MboxSHA1Sum, "malformed mbox_sha1sum")
	}

	if !a.ObjectType.IsValid() {
		return NewInvariantError("actor.objectType", a.ObjectType.String(), "must be Agent or Group")
	}

	if notBlank(a.OpenID) && !IsAbsoluteHTTPURI(*a.OpenID) {
		return NewFormatError("actor.openid", *a.OpenID, "must be an absolute http(s) URI")
	}

	if a.Account != nil {
		if err := a.Account.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func notBlank(s *string) bool {
	return s != nil && *s != ""
}
