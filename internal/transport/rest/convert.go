package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// StatementJSON is the wire form of a fully loaded statement aggregate.
type StatementJSON struct {
	ID        uuid.UUID    `json:"id"`
	Actor     *ActorJSON   `json:"actor,omitempty"`
	Verb      *VerbJSON    `json:"verb,omitempty"`
	Object    *ObjectJSON  `json:"object,omitempty"`
	Result    *ResultJSON  `json:"result,omitempty"`
	Context   *ContextJSON `json:"context,omitempty"`
	Timestamp *time.Time   `json:"timestamp,omitempty"`
	Stored    time.Time    `json:"stored"`
}

// StatementRowJSON is the compact wire form used by listings.
type StatementRowJSON struct {
	ID        uuid.UUID  `json:"id"`
	ActorID   uuid.UUID  `json:"actorId"`
	VerbID    string     `json:"verbId"`
	ObjectID  string     `json:"objectId"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Stored    time.Time  `json:"stored"`
}

type ActorJSON struct {
	ObjectType string       `json:"objectType"`
	Name       *string      `json:"name,omitempty"`
	Mbox       *string      `json:"mbox,omitempty"`
	MboxSHA1   *string      `json:"mbox_sha1sum,omitempty"`
	OpenID     *string      `json:"openid,omitempty"`
	Account    *AccountJSON `json:"account,omitempty"`
}

type AccountJSON struct {
	HomePage string  `json:"homePage"`
	Name     *string `json:"name,omitempty"`
}

type VerbJSON struct {
	ID      string            `json:"id"`
	Display map[string]string `json:"display,omitempty"`
}

type ObjectJSON struct {
	ID          string          `json:"id"`
	ObjectType  string          `json:"objectType"`
	StatementID *uuid.UUID      `json:"statementId,omitempty"`
	Definition  *DefinitionJSON `json:"definition,omitempty"`
}

type DefinitionJSON struct {
	Name        map[string]string `json:"name,omitempty"`
	Description map[string]string `json:"description,omitempty"`
	Type        *string           `json:"type,omitempty"`
	MoreInfo    *string           `json:"moreInfo,omitempty"`
	Extensions  map[string]any    `json:"extensions,omitempty"`
}

type ResultJSON struct {
	Score      *ScoreJSON     `json:"score,omitempty"`
	Success    bool           `json:"success"`
	Completion bool           `json:"completion"`
	Response   *string        `json:"response,omitempty"`
	Duration   *string        `json:"duration,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

type ScoreJSON struct {
	Raw    *int     `json:"raw,omitempty"`
	Min    *int     `json:"min,omitempty"`
	Max    *int     `json:"max,omitempty"`
	Scaled *float64 `json:"scaled,omitempty"`
}

type ContextJSON struct {
	Registration *string             `json:"registration,omitempty"`
	Revision     *string             `json:"revision,omitempty"`
	Platform     *string             `json:"platform,omitempty"`
	Language     *string             `json:"language,omitempty"`
	StatementRef *uuid.UUID          `json:"statement,omitempty"`
	Activities   map[string][]string `json:"contextActivities,omitempty"`
	Extensions   map[string]any      `json:"extensions,omitempty"`
}

func toStatementJSON(st *domain.Statement) StatementJSON {
	out := StatementJSON{
		ID:        st.ID,
		Timestamp: st.Timestamp,
		Stored:    st.CreatedAt,
	}
	if st.Actor != nil {
		out.Actor = toActorJSON(st.Actor)
	}
	if st.Verb != nil {
		out.Verb = &VerbJSON{ID: st.Verb.ID, Display: st.Verb.Display}
	}
	if st.Object != nil {
		out.Object = toObjectJSON(st.Object)
	}
	if st.Result != nil {
		out.Result = toResultJSON(st.Result)
	}
	if st.Context != nil {
		out.Context = toContextJSON(st.Context)
	}
	return out
}

func toStatementRowJSON(st *domain.Statement) StatementRowJSON {
	return StatementRowJSON{
		ID:        st.ID,
		ActorID:   st.ActorID,
		VerbID:    st.VerbID,
		ObjectID:  st.ObjectID,
		Timestamp: st.Timestamp,
		Stored:    st.CreatedAt,
	}
}

func toActorJSON(a *domain.Actor) *ActorJSON {
	out := &ActorJSON{
		ObjectType: a.ObjectType.String(),
		Name:       a.Name,
		Mbox:       a.Mbox,
		MboxSHA1:   a.MboxSHA1Sum,
		OpenID:     a.OpenID,
	}
	if a.Account != nil {
		out.Account = &AccountJSON{HomePage: a.Account.HomePage, Name: a.Account.Name}
	}
	return out
}

func toObjectJSON(o *domain.Object) *ObjectJSON {
	out := &ObjectJSON{
		ID:          o.ID,
		ObjectType:  o.Type.String(),
		StatementID: o.StatementID,
	}
	if o.Definition != nil {
		out.Definition = &DefinitionJSON{
			Name:        o.Definition.Name,
			Description: o.Definition.Description,
			Type:        o.Definition.Type,
			MoreInfo:    o.Definition.MoreInfo,
			Extensions:  o.Definition.Extensions,
		}
	}
	return out
}

func toResultJSON(r *domain.Result) *ResultJSON {
	out := &ResultJSON{
		Success:    r.Success,
		Completion: r.Completion,
		Response:   r.Response,
		Duration:   r.Duration,
		Extensions: r.Extensions,
	}
	if r.Score.Raw != nil || r.Score.Min != nil || r.Score.Max != nil || r.Score.Scaled != nil {
		out.Score = &ScoreJSON{
			Raw:    r.Score.Raw,
			Min:    r.Score.Min,
			Max:    r.Score.Max,
			Scaled: r.Score.Scaled,
		}
	}
	return out
}

func toContextJSON(c *domain.Context) *ContextJSON {
	out := &ContextJSON{
		Registration: c.Registration,
		Revision:     c.Revision,
		Platform:     c.Platform,
		Language:     c.Language,
		StatementRef: c.StatementRef,
		Extensions:   c.Extensions,
	}
	if len(c.Activities) > 0 {
		out.Activities = make(map[string][]string)
		for _, ca := range c.Activities {
			tag := ca.Type.String()
			out.Activities[tag] = append(out.Activities[tag], ca.ObjectID)
		}
	}
	return out
}
