package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError describes a single catalog violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a catalog for structural validity.
func Validate(c *Catalog) []ValidationError {
	var errs []ValidationError

	if c.Name == "" {
		errs = append(errs, ValidationError{"name", "required"})
	}
	if len(c.Indicators) == 0 {
		errs = append(errs, ValidationError{"indicators", "at least one indicator required"})
	}

	codes := make(map[string]bool)
	keys := make(map[string]string)
	for i, d := range c.Indicators {
		prefix := fmt.Sprintf("indicators[%d]", i)
		errs = append(errs, validateDefinition(prefix, d)...)
		if d.ReferenceCode == "" {
			continue
		}
		if codes[d.ReferenceCode] {
			errs = append(errs, ValidationError{prefix + ".reference_code", fmt.Sprintf("duplicate reference code: %q", d.ReferenceCode)})
			continue
		}
		codes[d.ReferenceCode] = true

		// Resolve folds case, accents and punctuation, so codes that fold
		// together would be indistinguishable.
		key := normalizeKey(d.ReferenceCode)
		if key == "" {
			errs = append(errs, ValidationError{prefix + ".reference_code", fmt.Sprintf("reference code %q has no letters or digits", d.ReferenceCode)})
			continue
		}
		if other, ok := keys[key]; ok {
			errs = append(errs, ValidationError{prefix + ".reference_code", fmt.Sprintf("reference code %q collides with %q", d.ReferenceCode, other)})
			continue
		}
		keys[key] = d.ReferenceCode
	}

	return errs
}

func validateDefinition(prefix string, d Definition) []ValidationError {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{prefix, err.Error()}}
	}
	var errs []ValidationError
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Path:    prefix + "." + fieldPath(fe.StructField()),
			Message: ruleMessage(fe),
		})
	}
	return errs
}

func fieldPath(field string) string {
	switch field {
	case "ReferenceCode":
		return "reference_code"
	case "Title":
		return "title"
	case "MaxPoints":
		return "max_points"
	case "ThresholdPercent":
		return "threshold_percent"
	case "Comparison":
		return "comparison"
	}
	return field
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be > " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "oneof":
		return fmt.Sprintf("invalid: %q (want one of %s)", fe.Value(), fe.Param())
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}
