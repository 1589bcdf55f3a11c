package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/swatchdog/swatchdog/domain"
)

// ExitCodeAborted is returned when the operator declines an interactive prompt.
const ExitCodeAborted = 130

// ExitError reports a non-zero exit from an external command.
// Kind, when set, classifies the failure (e.g. domain.ErrBuildFailed).
type ExitError struct {
	Kind        error
	Code        int
	Command     string
	OriginalErr error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("(exit %d) %s", e.Code, e.Command)
	if e.Kind != nil {
		msg = e.Kind.Error() + ": " + msg
	}
	if e.OriginalErr != nil {
		msg += ": " + e.OriginalErr.Error()
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.OriginalErr
}

// Is matches the failure kind so callers can use errors.Is(err, domain.ErrBuildFailed).
func (e *ExitError) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

func NewExitError(code int, command string, originalErr error) *ExitError {
	return &ExitError{
		Code:        code,
		Command:     command,
		OriginalErr: originalErr,
	}
}

// WithKind returns a copy of the exit error classified as kind.
func WithKind(err error, kind error) error {
	exitErr, ok := IsExitError(err)
	if !ok {
		return fmt.Errorf("%w: %w", kind, err)
	}
	classified := *exitErr
	classified.Kind = kind
	return &classified
}

func IsExitError(err error) (*ExitError, bool) {
	if err == nil {
		return nil, false
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// ValidationError is an internal check that failed on the given data set.
type ValidationError struct {
	Kind error
	Data []string
	Msg  string
}

func (e *ValidationError) Error() string {
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	return msg + " [" + strings.Join(e.Data, ", ") + "]"
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func NewValidationError(kind error, data []string, format string, args ...any) *ValidationError {
	if data == nil {
		data = []string{}
	}
	return &ValidationError{
		Kind: kind,
		Data: data,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// ExitCode maps an error returned by the deploy pipeline to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, domain.ErrSelectionAborted) {
		return ExitCodeAborted
	}
	if exitErr, ok := IsExitError(err); ok && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
