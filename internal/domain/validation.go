package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ClassifyMinDescriptionLength is the shortest description accepted for
// classification. It is stricter than the task description rule because
// classification quality degrades on very short text.
const ClassifyMinDescriptionLength = 5

// Field names as they appear on the wire.
const (
	fieldValue       = "value"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPriority    = "priority"
	fieldStatus      = "status"
)

var (
	validate = validator.New()

	taskFields     = []string{fieldTitle, fieldDescription, fieldPriority, fieldStatus}
	classifyFields = []string{fieldDescription}

	// Postgres TEXT cannot store 0x00, so neither store accepts it.
	noNULTag = "excludesrune=\x00"

	priorityTag = "oneof=" + joinValues(Priorities())
	statusTag   = "oneof=" + joinValues(Statuses())
)

// ValidateTaskInput checks a decoded JSON body against the task field
// constraints and returns a normalized TaskInput with defaults applied.
//
// The title is required and must be non-empty after trimming. Description,
// priority and status are optional; absent values take their defaults and a
// null description coerces to the empty string. Unknown keys are rejected.
// Every violation is collected into a single *ValidationError.
func ValidateTaskInput(raw any) (TaskInput, error) {
	obj, verr := asObject(raw)
	if verr != nil {
		return TaskInput{}, verr
	}

	verr = &ValidationError{}
	input := TaskInput{
		Priority: DefaultPriority,
		Status:   DefaultStatus,
	}

	// title
	if v, present := obj[fieldTitle]; !present {
		verr.Add(fieldTitle, quote(fieldTitle)+" is required")
	} else if s, ok := v.(string); !ok {
		verr.Add(fieldTitle, quote(fieldTitle)+" must be a string")
	} else {
		input.Title = strings.TrimSpace(s)
		if err := validate.Var(input.Title, "required"); err != nil {
			verr.Add(fieldTitle, quote(fieldTitle)+" is not allowed to be empty")
		} else if err := validate.Var(input.Title, noNULTag); err != nil {
			verr.Add(fieldTitle, mustNotContainNUL(fieldTitle))
		}
	}

	// description
	if v, present := obj[fieldDescription]; present && v != nil {
		if s, ok := v.(string); !ok {
			verr.Add(fieldDescription, quote(fieldDescription)+" must be a string")
		} else if err := validate.Var(s, noNULTag); err != nil {
			verr.Add(fieldDescription, mustNotContainNUL(fieldDescription))
		} else {
			input.Description = s
		}
	}

	// priority
	if v, present := obj[fieldPriority]; present {
		s, _ := v.(string)
		if err := validate.Var(s, "required,"+priorityTag); err != nil {
			verr.Add(fieldPriority, mustBeOneOf(fieldPriority, Priorities()))
		} else {
			input.Priority = Priority(s)
		}
	}

	// status
	if v, present := obj[fieldStatus]; present {
		s, _ := v.(string)
		if err := validate.Var(s, "required,"+statusTag); err != nil {
			verr.Add(fieldStatus, mustBeOneOf(fieldStatus, Statuses()))
		} else {
			input.Status = Status(s)
		}
	}

	rejectUnknown(obj, taskFields, verr)

	if !verr.Empty() {
		return TaskInput{}, verr
	}
	return input, nil
}

// ValidateClassifyRequest checks a decoded JSON body for a classification
// request. The description must be a string of at least
// ClassifyMinDescriptionLength characters.
func ValidateClassifyRequest(raw any) (ClassifyRequest, error) {
	obj, verr := asObject(raw)
	if verr != nil {
		return ClassifyRequest{}, verr
	}

	verr = &ValidationError{}
	var req ClassifyRequest

	if v, present := obj[fieldDescription]; !present {
		verr.Add(fieldDescription, quote(fieldDescription)+" is required")
	} else if s, ok := v.(string); !ok {
		verr.Add(fieldDescription, quote(fieldDescription)+" must be a string")
	} else if err := validate.Var(s, "required"); err != nil {
		verr.Add(fieldDescription, quote(fieldDescription)+" is not allowed to be empty")
	} else if err := validate.Var(s, fmt.Sprintf("min=%d", ClassifyMinDescriptionLength)); err != nil {
		verr.Add(fieldDescription, fmt.Sprintf("%s length must be at least %d characters long",
			quote(fieldDescription), ClassifyMinDescriptionLength))
	} else {
		req.Description = s
	}

	rejectUnknown(obj, classifyFields, verr)

	if !verr.Empty() {
		return ClassifyRequest{}, verr
	}
	return req, nil
}

// asObject requires the decoded body to be a JSON object.
func asObject(raw any) (map[string]any, *ValidationError) {
	obj, ok := raw.(map[string]any)
	if !ok || obj == nil {
		return nil, NewValidationError(fieldValue, quote(fieldValue)+" must be of type object")
	}
	return obj, nil
}

// rejectUnknown records a violation for every key outside allowed, sorted
// so the aggregated message is deterministic.
func rejectUnknown(obj map[string]any, allowed []string, verr *ValidationError) {
	var unknown []string
	for k := range obj {
		if !contains(allowed, k) {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		verr.Add(k, quote(k)+" is not allowed")
	}
}

func mustBeOneOf[T ~string](field string, values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return fmt.Sprintf("%s must be one of [%s]", quote(field), strings.Join(parts, ", "))
}

func mustNotContainNUL(field string) string {
	return quote(field) + " must not contain NUL characters"
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, " ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func quote(field string) string {
	return `"` + field + `"`
}
