package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Errors maps a payload field to its validation messages
type Errors map[string][]string

// Validator checks generic key-value payloads against per entity rule sets
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks every rule, so absent fields fail "required" rules
func (v *Validator) Validate(payload map[string]any, rules map[string]string) Errors {
	return v.check(payload, rules, false)
}

// ValidatePresent checks only the rules whose field is present in the payload
func (v *Validator) ValidatePresent(payload map[string]any, rules map[string]string) Errors {
	return v.check(payload, rules, true)
}

func (v *Validator) check(payload map[string]any, rules map[string]string, presentOnly bool) Errors {
	ruleSet := make(map[string]any, len(rules))
	for field, rule := range rules {
		if _, ok := payload[field]; presentOnly && !ok {
			continue
		}
		ruleSet[field] = rule
	}

	result := v.validate.ValidateMap(payload, ruleSet)
	if len(result) == 0 {
		return nil
	}

	errs := make(Errors, len(result))
	for field, res := range result {
		errs[field] = messages(field, res)
	}

	return errs
}

func messages(field string, res any) []string {
	err, ok := res.(error)
	if !ok {
		return []string{fmt.Sprintf("The %s field is invalid.", field)}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{fmt.Sprintf("The %s field is invalid.", field)}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(field, fe.Tag()))
	}
	return msgs
}

func message(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "number":
		return fmt.Sprintf("The %s must be a number.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
