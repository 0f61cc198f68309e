// Package errors provides custom error types for the squad selector.
// These errors enable programmatic error checking across the roster engine,
// the profile store, the squad codec and the catalog adapters, and carry the
// user-facing reason a failed operation should report.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// As is an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the squad selector
var (
	// ErrNotFound indicates that a requested profile, team or player was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrRejected indicates that a roster change would break a composition limit
	ErrRejected = errors.New("rejected")

	// ErrMalformedToken indicates that a shared token could not be decoded
	ErrMalformedToken = errors.New("malformed token")

	// ErrCatalogUnavailable indicates that the player catalog could not be fetched
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrNothingToShare indicates that there are no non-empty squads to export
	ErrNothingToShare = errors.New("nothing to share")
)

// Reason identifies why a roster change was rejected.
type Reason string

// Rejection reasons, evaluated in this order by the roster engine.
const (
	ReasonGoalkeeperLimit Reason = "GOALKEEPER_LIMIT"
	ReasonOutfieldLimit   Reason = "OUTFIELD_LIMIT"
	ReasonSquadFull       Reason = "SQUAD_FULL"
)

// String returns the string representation of a Reason.
func (r Reason) String() string {
	return string(r)
}

// RejectionError is returned when adding a player would violate a roster limit.
// No state change happens when it is returned.
type RejectionError struct {
	Reason   Reason
	PlayerID int
	Limit    int
	Message  string
}

// Error implements the error interface
func (e *RejectionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("player %d rejected: %s", e.PlayerID, e.Reason)
}

// Is implements errors.Is support
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// NewRejectionError creates a new RejectionError with the user-facing message for the reason.
func NewRejectionError(reason Reason, playerID, limit int) *RejectionError {
	return &RejectionError{
		Reason:   reason,
		PlayerID: playerID,
		Limit:    limit,
		Message:  RejectionMessage(reason, limit),
	}
}

// RejectionMessage returns the actionable message shown to the user for a reason.
func RejectionMessage(reason Reason, limit int) string {
	switch reason {
	case ReasonGoalkeeperLimit:
		return fmt.Sprintf("Maximum %d goalkeepers allowed!", limit)
	case ReasonOutfieldLimit:
		return fmt.Sprintf("Maximum %d outfield players allowed!", limit)
	case ReasonSquadFull:
		return fmt.Sprintf("Squad complete (%d players)", limit)
	default:
		return fmt.Sprintf("roster change rejected: %s", reason)
	}
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// TokenError represents a shared token that could not be decoded.
// Its Error text is the generic message surfaced to users.
type TokenError struct {
	Format string // "squad" or "all"
	Detail string
	Err    error
}

// Error implements the error interface
func (e *TokenError) Error() string {
	return "could not load shared data"
}

// Unwrap implements errors.Unwrap
func (e *TokenError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

// NewTokenError creates a new TokenError
func NewTokenError(format, detail string, err error) *TokenError {
	return &TokenError{Format: format, Detail: detail, Err: err}
}

// CatalogError represents a failure of the player catalog for one team.
type CatalogError struct {
	Team    string
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("catalog error for %s from %s: %s", e.Team, e.Source, e.Message)
	}
	return fmt.Sprintf("catalog error for %s: %s", e.Team, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CatalogError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

// NewCatalogError creates a new CatalogError
func NewCatalogError(team, source string, err error) *CatalogError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &CatalogError{
		Team:    team,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "base64"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "delete", "scan", "open"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "rename", "delete", "save", "load"
	Resource  string // "profile", "squad", "catalog"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRejected checks if an error is a roster rejection
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}

// IsMalformedToken checks if an error is a token decoding failure
func IsMalformedToken(err error) bool {
	return errors.Is(err, ErrMalformedToken)
}

// IsCatalogUnavailable checks if an error is a catalog failure
func IsCatalogUnavailable(err error) bool {
	return errors.Is(err, ErrCatalogUnavailable)
}

// RejectionReason extracts the rejection reason from err, if any.
func RejectionReason(err error) (Reason, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapCatalog wraps an error as a CatalogError
func WrapCatalog(team, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewCatalogError(team, source, err)
}
