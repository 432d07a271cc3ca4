package errors

import (
	"errors"
	"fmt"
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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
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

// AuthenticationError represents a missing or invalid caller session
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents an authenticated caller acting outside its role or team scope
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidStateError is returned when a resource is not in the state a transition requires.
// Current carries the status observed in the store.
type InvalidStateError struct {
	Current  string
	Required string
}

func (e *InvalidStateError) Error() string {
	if e.Required != "" {
		return fmt.Sprintf("invalid state: resource is %s, expected %s", e.Current, e.Required)
	}
	return fmt.Sprintf("invalid state: resource is %s", e.Current)
}

// AlreadyProcessedError is returned when a conditional write matched no rows because
// a concurrent caller transitioned the resource first.
type AlreadyProcessedError struct {
	Current string
}

func (e *AlreadyProcessedError) Error() string {
	return fmt.Sprintf("already processed: resource is now %s", e.Current)
}

// PersistenceError wraps a failed store call; the store message is kept
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrResourceNotFound = &NotFoundError{Entity: "resource"}
	ErrRevenueNotFound  = &NotFoundError{Entity: "revenue entry"}
)

// Already Exists Errors
var (
	ErrTeamExists     = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrUserExists     = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrResourceExists = &AlreadyExistsError{Entity: "resource", Context: "in this team"}
)

// Authentication Errors
var (
	ErrUnauthenticated    = &AuthenticationError{Message: "authentication required"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidSession     = &AuthenticationError{Message: "invalid or expired session"}
)

// Authorization Errors
var (
	ErrForbiddenRole         = &AuthorizationError{Message: "forbidden: role"}
	ErrForbiddenTeamMismatch = &AuthorizationError{Message: "forbidden: team mismatch"}
	ErrForbiddenNotOwner     = &AuthorizationError{Message: "forbidden: not the owner"}
	ErrPendingApproval       = &AuthorizationError{Message: "forbidden: account is pending approval"}
	ErrUserNotAssignedToTeam = &AuthorizationError{Message: "forbidden: user is not assigned to any team"}
)

// Request Validation Errors
var (
	ErrInvalidStatus        = &ValidationError{Field: "status", Message: "invalid status"}
	ErrInvalidResourceKind  = &ValidationError{Field: "kind", Message: "invalid resource kind"}
	ErrInvalidDateRange     = &ValidationError{Field: "date", Message: "invalid date range"}
	ErrRevenueDateInFuture  = &ValidationError{Field: "revenue_date", Message: "revenue date cannot be in the future"}
	ErrImportEmpty          = &ValidationError{Message: "import contains no rows"}
	ErrImportTooLarge       = &ValidationError{Message: "import exceeds the maximum number of rows"}
	ErrUnsupportedImportFmt = &ValidationError{Field: "file", Message: "unsupported import format"}
)

// Business Logic Errors
var (
	ErrTeamHasMembers = errors.New("team still has members")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsAlreadyProcessed checks if an error is an AlreadyProcessedError
func IsAlreadyProcessed(err error) bool {
	var processedErr *AlreadyProcessedError
	return errors.As(err, &processedErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(current, required string) error {
	return &InvalidStateError{Current: current, Required: required}
}

// NewAlreadyProcessedError creates a new AlreadyProcessedError
func NewAlreadyProcessedError(current string) error {
	return &AlreadyProcessedError{Current: current}
}

// NewPersistenceError wraps a store failure
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
