package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotInitialized = errors.New("not initialized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidColor   = errors.New("invalid color")
	ErrStorage        = errors.New("storage failure")
)

// NotFoundError indicates a resource doesn't exist.
type NotFoundError struct {
	Resource string // "palette", "color", "config"
	ID       string // The identifier that wasn't found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError indicates a resource already exists.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotInitializedError indicates swatch has no data directory here.
type NotInitializedError struct {
	Path string
}

func (e *NotInitializedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("swatch not initialized in %s (run 'swatch init')", e.Path)
	}
	return "swatch not initialized (run 'swatch init')"
}

func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}

// InvalidColorError indicates a malformed hex color.
type InvalidColorError struct {
	Value string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid hex color %q (expected #RRGGBB)", e.Value)
}

func (e *InvalidColorError) Unwrap() error {
	return ErrInvalidColor
}

// StorageError indicates the persistence sink failed to read or write.
// The in-memory palette is unaffected.
type StorageError struct {
	Op  string // "save", "load", "delete", "list"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

// Helper constructors for common cases

func PaletteNotFound(idOrAlias string) error {
	return &NotFoundError{Resource: "palette", ID: idOrAlias}
}

func ColorNotFound(hex string) error {
	return &NotFoundError{Resource: "color", ID: hex}
}

func AliasAlreadyExists(alias string) error {
	return &AlreadyExistsError{Resource: "alias", ID: alias}
}

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func InvalidColor(value string) error {
	return &InvalidColorError{Value: value}
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already-exists error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidColor checks if an error is a malformed-color error.
func IsInvalidColor(err error) bool {
	return errors.Is(err, ErrInvalidColor)
}

// IsStorageError checks if an error came from the persistence sink.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
