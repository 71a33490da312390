package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a single-field validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// SubmissionErrors accumulates field name -> messages. All checks run to
// completion before the mapping is returned, so the caller sees every problem
// in one round trip.
type SubmissionErrors map[string][]string

// Add appends a message for a field
func (s SubmissionErrors) Add(field, message string) {
	s[field] = append(s[field], message)
}

// Empty reports whether no errors were recorded
func (s SubmissionErrors) Empty() bool {
	return len(s) == 0
}

// SubmissionValidationError carries the complete field->messages mapping of a
// failed eligibility check. It never implies any state was changed.
type SubmissionValidationError struct {
	Errors SubmissionErrors
}

func (e *SubmissionValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("submission validation failed: %s", strings.Join(fields, ", "))
}

// ProjectValidationErrors is the per-project error item of a batch transition
type ProjectValidationErrors struct {
	ID     uuid.UUID        `json:"id"`
	Title  string           `json:"title"`
	Errors SubmissionErrors `json:"errors"`
}

// BatchValidationError rejects a whole component-group transition when any
// member fails validation. No member is transitioned.
type BatchValidationError struct {
	Items []ProjectValidationErrors
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d project(s)", len(e.Items))
}

// TransitionError represents a precondition failure: the project is not in a
// (submission status, version) combination that allows the requested action.
type TransitionError struct {
	Message string
}

func (e *TransitionError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProjectNotFound       = &NotFoundError{Entity: "project"}
	ErrMetaProjectNotFound   = &NotFoundError{Entity: "meta project"}
	ErrCountryNotFound       = &NotFoundError{Entity: "country"}
	ErrAgencyNotFound        = &NotFoundError{Entity: "agency"}
	ErrOdsOdpNotFound        = &NotFoundError{Entity: "ods/odp entry"}
	ErrProjectFileNotFound   = &NotFoundError{Entity: "project file"}
	ErrCommentNotFound       = &NotFoundError{Entity: "project comment"}
	ErrFieldConfigNotFound   = &NotFoundError{Entity: "project field configuration"}
	ErrComponentGroupMissing = &NotFoundError{Entity: "component group"}
)

// Business Logic Errors
var (
	ErrProjectArchived        = errors.New("archived project versions are immutable")
	ErrProjectNotDeletable    = errors.New("only draft version 1 projects may be deleted")
	ErrSubstanceBlendConflict = errors.New("an ods/odp entry may reference a substance or a blend, not both")
	ErrNoProjectsSelected     = errors.New("at least one project id is required")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Soft warning texts returned alongside 200 responses
const (
	WarnMultipleMetaProjects = "Multiple meta projects found for the same country and cluster. Using the first one found."
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error carries user-correctable validation detail
func IsValidation(err error) bool {
	var ve *ValidationError
	var sve *SubmissionValidationError
	var bve *BatchValidationError
	return errors.As(err, &ve) || errors.As(err, &sve) || errors.As(err, &bve)
}

// IsTransition checks if an error is a transition precondition failure
func IsTransition(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTransitionError creates a TransitionError with a formatted message
func NewTransitionError(format string, args ...interface{}) error {
	return &TransitionError{Message: fmt.Sprintf(format, args...)}
}
