package domain

import "strconv"

// Score holds the raw, min, max and scaled values of a result.
// Absent values are nil; invariants only apply between present values.
type Score struct {
	Raw    *int
	Min    *int
	Max    *int
	Scaled *float64
}

// Validate enforces the score invariants:
//   - scaled ∈ [-1, 1]
//   - min < max when both bounds are present
//   - raw ∈ [min, max] against whichever bounds are present
//
// The first violated rule is reported; later rules are not evaluated.
func (s *Score) Validate() error {
	if s.Scaled != nil && (*s.Scaled < -1 || *s.Scaled > 1) {
		return NewInvariantError("score.scaled",
			strconv.FormatFloat(*s.Scaled, 'f', -1, 64),
			"must be between -1 and 1")
	}

	if s.Min != nil && s.Max != nil && *s.Min >= *s.Max {
		return NewInvariantError("score.min",
			strconv.Itoa(*s.Min), "must be lower than max")
	}

	if s.Raw != nil {
		if s.Min != nil && *s.Raw < *s.Min {
			return NewInvariantError("score.raw",
				strconv.Itoa(*s.Raw), "must not be lower than min")
		}
		if s.Max != nil && *s.Raw > *s.Max {
			return NewInvariantError("score.raw",
				strconv.Itoa(*s.Raw), "must not be greater than max")
		}
	}

	return nil
}

// DeriveScaled fills the scaled value from raw/max when the caller did not
// supply one and both raw and a non-zero max are present.
func (s *Score) DeriveScaled() {
	if s.Scaled != nil || s.Raw == nil || s.Max == nil || *s.Max == 0 {
		return
	}
	scaled := float64(*s.Raw) / float64(*s.Max)
	s.Scaled = &scaled
}
