package statement

import (
	"time"

	"github.com/heartmarshall/xapi-statements/internal/domain"
)

// buildResult validates the raw result payload and produces the domain
// value. It runs before any persistence so that a bad result aborts the
// statement without writing anything.
//
// Checks run in order: required keys and their types, aggregated into one
// error; then completion coercion; then the score cross-field invariants;
// then the duration.
func buildResult(raw *RawResult) (*domain.Result, error) {
	res := &domain.Result{Extensions: domain.ExtensionMap(raw.Extensions)}

	var missing []domain.FieldError

	if response, ok := asText(raw.Response); ok {
		res.Response = &response
	} else {
		missing = append(missing, domain.FieldError{Field: "response", Message: "must be a text value"})
	}

	if success, ok := raw.Success.(bool); ok {
		res.Success = success
	} else {
		missing = append(missing, domain.FieldError{Field: "success", Message: "must be a boolean"})
	}

	if rawScore, ok := asInt(raw.ScoreRaw); ok {
		res.Score.Raw = &rawScore
	} else {
		missing = append(missing, domain.FieldError{Field: "score_raw", Message: "must be an integer"})
	}

	if minScore, ok := asInt(raw.ScoreMin); ok {
		res.Score.Min = &minScore
	} else {
		missing = append(missing, domain.FieldError{Field: "score_min", Message: "must be an integer"})
	}

	if maxScore, ok := asInt(raw.ScoreMax); ok {
		res.Score.Max = &maxScore
	} else {
		missing = append(missing, domain.FieldError{Field: "score_max", Message: "must be an integer"})
	}

	if len(missing) > 0 {
		return nil, domain.NewValidationErrors(missing)
	}

	if raw.Completion != nil {
		completion, ok := asBool(raw.Completion)
		if !ok {
			return nil, domain.NewValidationError("completion",
				"must be a boolean or the strings \"true\"/\"false\"")
		}
		res.Completion = completion
	}

	res.Score.Scaled = raw.ScoreScaled
	if err := res.Score.Validate(); err != nil {
		return nil, err
	}
	// A scaled derived from lopsided bounds (raw=-200, min=-300, max=100)
	// can leave [-1, 1] even when the supplied values pass; the second
	// pass catches it here instead of the database check constraint.
	res.Score.DeriveScaled()
	if err := res.Score.Validate(); err != nil {
		return nil, err
	}

	switch {
	case raw.Duration != "":
		if _, err := domain.ParseDuration(raw.Duration); err != nil {
			return nil, err
		}
		res.Duration = &raw.Duration
	case raw.DurationInSeconds != nil:
		iso := domain.FormatDuration(time.Duration(*raw.DurationInSeconds) * time.Second)
		res.Duration = &iso
	}

	if err := res.Extensions.Validate("result.extensions"); err != nil {
		return nil, err
	}

	return res, nil
}

func asText(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt accepts native ints and the whole-valued float64s that JSON decoding
// produces for every number.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// asBool accepts a native bool or the literal strings "true" and "false".
func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch b {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}
