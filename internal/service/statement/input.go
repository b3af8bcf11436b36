package statement

import "time"

// The Raw* types are the wire form of a statement payload. Field names follow
// the xAPI JSON conventions (camelCase with a few historical snake_case score
// keys); translation to internal names happens here, once, at the boundary.

// RawStatement is a complete statement payload as submitted by a caller.
type RawStatement struct {
	Actor     *RawActor   `json:"actor"`
	Verb      *RawVerb    `json:"verb"`
	Object    *RawObject  `json:"object"`
	Result    *RawResult  `json:"result"`
	Context   *RawContext `json:"context"`
	Timestamp *time.Time  `json:"timestamp"`
}

// CallerContext carries optional information about the authenticated caller.
// Email, when present, is used to auto-fill a missing actor mbox.
type CallerContext struct {
	Email string
}

// RawActor is the wire form of an agent or group.
type RawActor struct {
	ObjectType  string      `json:"objectType"`
	Name        string      `json:"name"`
	Mbox        string      `json:"mbox"`
	MboxSHA1Sum string      `json:"mbox_sha1sum"`
	OpenID      string      `json:"openid"`
	Account     *RawAccount `json:"account"`
}

// RawAccount is the wire form of an actor account identifier.
type RawAccount struct {
	HomePage string `json:"homePage"`
	Name     string `json:"name"`
}

// RawVerb is the wire form of a verb reference.
type RawVerb struct {
	ID      string            `json:"id"`
	Display map[string]string `json:"display"`
}

// RawObject is the wire form of a statement object. The actor/verb/object
// (and optional result/context/timestamp) fields are populated only when
// objectType is SubStatement.
type RawObject struct {
	ObjectType string         `json:"objectType"`
	ID         string         `json:"id"`
	Definition *RawDefinition `json:"definition"`

	Actor     *RawActor   `json:"actor"`
	Verb      *RawVerb    `json:"verb"`
	Object    *RawObject  `json:"object"`
	Result    *RawResult  `json:"result"`
	Context   *RawContext `json:"context"`
	Timestamp *time.Time  `json:"timestamp"`
}

// RawDefinition is the wire form of an activity definition.
type RawDefinition struct {
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"description"`
	Type        string            `json:"type"`
	MoreInfo    string            `json:"moreInfo"`
	Extensions  map[string]any    `json:"extensions"`
}

// RawResult is the wire form of a statement result. The required keys are
// deliberately typed as any: the pipeline reports missing and wrongly-typed
// keys together in one aggregated error, so type checking happens explicitly
// in buildResult rather than during decoding.
type RawResult struct {
	Response          any            `json:"response"`
	Success           any            `json:"success"`
	ScoreRaw          any            `json:"score_raw"`
	ScoreMin          any            `json:"score_min"`
	ScoreMax          any            `json:"score_max"`
	ScoreScaled       *float64       `json:"scaled"`
	Completion        any            `json:"completion"`
	Duration          string         `json:"duration"`
	DurationInSeconds *int           `json:"durationInSeconds"`
	Extensions        map[string]any `json:"extensions"`
}

// RawContext is the wire form of a statement context.
type RawContext struct {
	Instructor        *RawActor                       `json:"instructor"`
	Team              *RawActor                       `json:"team"`
	Statement         *RawStatementRef                `json:"statement"`
	ContextActivities map[string][]RawContextActivity `json:"contextActivities"`
	Registration      string                          `json:"registration"`
	Revision          string                          `json:"revision"`
	Platform          string                          `json:"platform"`
	Language          string                          `json:"language"`
	Extensions        map[string]any                  `json:"extensions"`
}

// RawStatementRef is the wire form of a reference to another statement.
type RawStatementRef struct {
	ObjectType string `json:"objectType"`
	ID         string `json:"id"`
}

// RawContextActivity is the wire form of one contextActivities list entry.
type RawContextActivity struct {
	ID         string         `json:"id"`
	ObjectType string         `json:"objectType"`
	Definition *RawDefinition `json:"definition"`
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
