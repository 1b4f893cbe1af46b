package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osvaldoandrade/ulid/pkg/ulid"
)

type ErrorKind string

const (
	KindInternal   ErrorKind = "internal"
	KindValidation ErrorKind = "validation"
	KindUsage      ErrorKind = "usage"
	KindExhausted  ErrorKind = "exhausted"
)

// MaxCount is the largest accepted --count.
const MaxCount = 1 << 20

const (
	ExitInternal  = 1
	ExitInvalid   = 1
	ExitUsage     = 2
	ExitExhausted = 3
)

var (
	ErrInvalidULID  = errors.New("invalid ulid")
	ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", MaxCount)
	ErrCountWithArg = errors.New("count applies only when generating")
)

// InvalidULIDsError lists every argument that failed to parse.
type InvalidULIDsError struct {
	Values []string
}

func (e *InvalidULIDsError) Error() string {
	quoted := make([]string, 0, len(e.Values))
	for _, value := range e.Values {
		quoted = append(quoted, strconv.Quote(value))
	}
	return fmt.Sprintf("Invalid ULID strings: [%s]", strings.Join(quoted, ", "))
}

func (e *InvalidULIDsError) Is(target error) bool {
	return target == ErrInvalidULID
}

type ExitError struct {
	Code    int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e ExitError) Error() string {
	return errorMessage(e)
}

func (e ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) ExitError {
	return ExitError{Code: ExitUsage, Kind: KindUsage, Err: err}
}

func NormalizeError(err error) ExitError {
	if err == nil {
		return ExitError{Code: 0}
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 0 {
			exitErr.Code = ExitInternal
		}
		return exitErr
	}

	switch {
	case errors.Is(err, ErrInvalidULID):
		return ExitError{Code: ExitInvalid, Kind: KindValidation, Err: err}
	case errors.Is(err, ulid.ErrSequenceExhausted):
		return ExitError{Code: ExitExhausted, Kind: KindExhausted, Err: err}
	case errors.Is(err, ErrInvalidCount),
		errors.Is(err, ErrCountWithArg):
		return ExitError{Code: ExitUsage, Kind: KindUsage, Err: err}
	default:
		return ExitError{Code: ExitInternal, Kind: KindInternal, Err: err}
	}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return NormalizeError(err).Code
}

func writeCLIError(w io.Writer, exitErr ExitError, asJSON bool) error {
	if exitErr.Code == 0 {
		return nil
	}
	message := errorMessage(exitErr)
	if asJSON {
		payload := struct {
			Code    int    `json:"code"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}{
			Code:    exitErr.Code,
			Kind:    string(exitErr.Kind),
			Message: message,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	// Invalid arguments are reported bare so the line can be grepped.
	if exitErr.Kind == KindValidation {
		_, err := fmt.Fprintln(w, message)
		return err
	}

	ui := newRenderer(w, false)
	prefix := "Error"
	if exitErr.Kind != "" {
		prefix = fmt.Sprintf("Error (%s)", exitErr.Kind)
	}
	prefix = ui.err(prefix)
	_, err := fmt.Fprintf(w, "%s: %s\n", prefix, message)
	return err
}

func errorMessage(exitErr ExitError) string {
	if exitErr.Message != "" {
		return exitErr.Message
	}
	if exitErr.Err != nil {
		return exitErr.Err.Error()
	}
	return "unknown error"
}
