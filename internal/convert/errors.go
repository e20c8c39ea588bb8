package convert

import (
	"errors"
	"fmt"

	"github.com/danielmiessler/tw2s/internal/i18n"
)

// Kind classifies a failed run.
type Kind int

const (
	// KindInputNotFound: the input path does not exist.
	KindInputNotFound Kind = iota + 1
	// KindInputIsDirectory: the input path names a directory.
	KindInputIsDirectory
	// KindInputOpenFailed: the input exists but cannot be stat'ed or opened.
	KindInputOpenFailed
	// KindOutputIsDirectory: the output path names a directory, even with force.
	KindOutputIsDirectory
	// KindOutputAlreadyExists: the output file exists and force is off.
	KindOutputAlreadyExists
	// KindOutputIsInput: input and output are the same file.
	KindOutputIsInput
	// KindOutputCreateFailed: the output file cannot be created.
	KindOutputCreateFailed
	// KindUnsupportedPath: a derived output name is not valid UTF-8.
	KindUnsupportedPath
	// KindIoFailure: reading, writing or flushing failed mid-run.
	KindIoFailure
	// KindEngineInitFailure: the dictionary could not be built or loaded.
	KindEngineInitFailure
)

var kindMessages = map[Kind]string{
	KindInputNotFound:       "error_input_not_found",
	KindInputIsDirectory:    "error_input_is_directory",
	KindInputOpenFailed:     "error_input_open_failed",
	KindOutputIsDirectory:   "error_output_is_directory",
	KindOutputAlreadyExists: "error_output_already_exists",
	KindOutputIsInput:       "error_output_is_input",
	KindOutputCreateFailed:  "error_output_create_failed",
	KindUnsupportedPath:     "error_unsupported_path",
	KindIoFailure:           "error_io_failure",
	KindEngineInitFailure:   "error_engine_init_failure",
}

var kindNames = map[Kind]string{
	KindInputNotFound:       "InputNotFound",
	KindInputIsDirectory:    "InputIsDirectory",
	KindInputOpenFailed:     "InputOpenFailed",
	KindOutputIsDirectory:   "OutputIsDirectory",
	KindOutputAlreadyExists: "OutputAlreadyExists",
	KindOutputIsInput:       "OutputIsInput",
	KindOutputCreateFailed:  "OutputCreateFailed",
	KindUnsupportedPath:     "UnsupportedPath",
	KindIoFailure:           "IoFailure",
	KindEngineInitFailure:   "EngineInitFailure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the failure of a run. Path is the offending file, empty for the
// standard streams; Err is the underlying cause, if any.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	var msg string
	if e.Kind == KindIoFailure && e.Path == "" {
		msg = i18n.T("error_io_failure_stream")
	} else {
		msg = fmt.Sprintf(i18n.T(kindMessages[e.Kind]), e.Path)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns an *Error of the given kind.
func NewError(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Err: cause}
}

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
