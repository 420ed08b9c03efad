// Package errors provides standardized error handling for fileops.
// It defines the error kinds surfaced by the rename/create core, the
// configuration layer and the task executor, together with helpers for
// consistent error creation, wrapping and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Path error kinds, surfaced by the command selector
	InvalidPath
	NeedsParentCreationConfirmation
	NeedsOverwriteConfirmation
	DestinationIsDirectory
	ParentIsFile
	TypeConflict
	SameAsOriginal
	Unchanged
	SourceNotFound
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Task error kinds
	TaskFailed
	TaskCanceled
	TaskNotFound
)

var kindNames = map[ErrorKind]string{
	Unknown:                         "unknown",
	InvalidPath:                     "invalid path",
	NeedsParentCreationConfirmation: "needs parent creation confirmation",
	NeedsOverwriteConfirmation:      "needs overwrite confirmation",
	DestinationIsDirectory:          "destination is a directory",
	ParentIsFile:                    "parent is a file",
	TypeConflict:                    "type conflict",
	SameAsOriginal:                  "same as original",
	Unchanged:                       "unchanged",
	SourceNotFound:                  "source not found",
	InvalidConfig:                   "invalid config",
	ConfigNotFound:                  "config not found",
	TaskFailed:                      "task failed",
	TaskCanceled:                    "task canceled",
	TaskNotFound:                    "task not found",
}

// String returns a short human readable name for the kind
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Common error constants for frequently occurring errors
var (
	ErrInvalidPath   = NewPathError("path contains a newline or NUL byte", "", InvalidPath, nil)
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrTaskNotFound  = NewTaskError("task not found", "", TaskNotFound, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// PathError represents a refusal to build a command for a destination path.
// All path errors are recoverable: the caller re-prompts and evaluates again.
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %q: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %q", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// Is matches path errors by kind so that errors.Is(err, ErrInvalidPath)
// holds for any invalid path error regardless of the path it carries.
func (e *PathError) Is(target error) bool {
	var other *PathError
	if !errors.As(target, &other) {
		return false
	}
	return other.kind == e.kind
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// TaskError represents errors reported by the task executor
type TaskError struct {
	ApplicationError
	taskID string
}

// NewTaskError creates a new task error
func NewTaskError(msg string, taskID string, kind ErrorKind, err error) *TaskError {
	return &TaskError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		taskID: taskID,
	}
}

// Error returns the task error message
func (e *TaskError) Error() string {
	if e.taskID != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: task=%s: %v", e.msg, e.taskID, e.err)
		}
		return fmt.Sprintf("%s: task=%s", e.msg, e.taskID)
	}
	return e.ApplicationError.Error()
}

// TaskID returns the task identifier associated with the error
func (e *TaskError) TaskID() string {
	return e.taskID
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first kinded error in err's chain
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

func pathKind(err error, kind ErrorKind) bool {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Kind() == kind
	}
	return false
}

// IsInvalidPath checks if the error rejects a path with unsupported content
func IsInvalidPath(err error) bool {
	return pathKind(err, InvalidPath)
}

// NeedsOverwrite checks if the error asks the caller to confirm an overwrite
func NeedsOverwrite(err error) bool {
	return pathKind(err, NeedsOverwriteConfirmation)
}

// NeedsParentCreation checks if the error asks the caller to confirm
// creating the destination's parent directory
func NeedsParentCreation(err error) bool {
	return pathKind(err, NeedsParentCreationConfirmation)
}

// IsDestinationDirectory checks if the destination is an existing directory
func IsDestinationDirectory(err error) bool {
	return pathKind(err, DestinationIsDirectory)
}

// IsParentFile checks if the destination's parent is a non-directory
func IsParentFile(err error) bool {
	return pathKind(err, ParentIsFile)
}

// IsTypeConflict checks if a directory would replace an existing file
func IsTypeConflict(err error) bool {
	return pathKind(err, TypeConflict)
}

// IsSameAsOriginal checks if a copy or link targets its own source
func IsSameAsOriginal(err error) bool {
	return pathKind(err, SameAsOriginal)
}

// IsUnchanged checks if a rename was requested onto the unchanged path
func IsUnchanged(err error) bool {
	return pathKind(err, Unchanged)
}

// IsSourceNotFound checks if the source of an operation does not exist
func IsSourceNotFound(err error) bool {
	return pathKind(err, SourceNotFound)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsTaskError checks if the error came from the task executor
func IsTaskError(err error) bool {
	var taskErr *TaskError
	return errors.As(err, &taskErr)
}

// IsTaskCanceled checks if the task was canceled before it finished
func IsTaskCanceled(err error) bool {
	var taskErr *TaskError
	if errors.As(err, &taskErr) {
		return taskErr.Kind() == TaskCanceled
	}
	return false
}
