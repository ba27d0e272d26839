// Package indicator applies the scoring rule of an indicator definition to
// operator-supplied counts.
package indicator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// InvalidInputError is returned when counts cannot form a valid Input.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Input holds the counts for one evaluation. Build it with NewInput.
type Input struct {
	Total         int `json:"total" validate:"min=1"`
	Nonconforming int `json:"nonconforming" validate:"min=0,ltefield=Total"`
}

// NewInput validates the counts. Total must be at least 1 and Nonconforming
// must lie in [0, Total].
func NewInput(total, nonconforming int) (Input, error) {
	in := Input{Total: total, Nonconforming: nonconforming}
	if err := in.validate(); err != nil {
		return Input{}, err
	}
	return in, nil
}

func (in Input) validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &InvalidInputError{Field: "input", Reason: err.Error()}
	}
	fe := fieldErrs[0]
	switch fe.Field() {
	case "Total":
		return &InvalidInputError{Field: "total", Reason: fmt.Sprintf("must be >= 1, got %d", in.Total)}
	default:
		if fe.Tag() == "ltefield" {
			return &InvalidInputError{Field: "nonconforming", Reason: fmt.Sprintf("must be <= total (%d), got %d", in.Total, in.Nonconforming)}
		}
		return &InvalidInputError{Field: "nonconforming", Reason: fmt.Sprintf("must be >= 0, got %d", in.Nonconforming)}
	}
}
