package entities

import "errors"

// Validation errors raised by entity constructors.
var (
	ErrEmptyActionText   = errors.New("action item text must be non-empty")
	ErrEmptyDecisionText = errors.New("decision text must be non-empty")
	ErrInvalidEffect     = errors.New("effect must be 'affectsOnlyThisWorkgroup' or 'mayAffectOtherPeople'")
	ErrEmptyPersonName   = errors.New("person name must be non-empty")
)
