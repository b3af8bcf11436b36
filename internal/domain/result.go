package domain

import "github.com/google/uuid"

// Result records the outcome of the activity: score, success, completion,
// a free-form response, an ISO 8601 duration, and extensions.
type Result struct {
	ID          uuid.UUID
	StatementID uuid.UUID
	Score       Score
	Success     bool
	Completion  bool
	Response    *string
	Duration    *string
	Extensions  ExtensionMap
}

// Validate checks the score invariants, the duration string and the
// extensions map. Required-key checks on the raw payload happen earlier,
// at the construction boundary.
func (r *Result) Validate() error {
	if err := r.Score.Validate(); err != nil {
		return err
	}
	if notBlank(r.Duration) {
		if _, err := ParseDuration(*r.Duration); err != nil {
			return err
		}
	}
	return r.Extensions.Validate("result.extensions")
}
