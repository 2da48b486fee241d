package pipeline

import "errors"

// Category classifies a pipeline failure for exit-code mapping.
type Category string

const (
	CategoryUsage      Category = "usage"
	CategoryConfig     Category = "config"
	CategoryDependency Category = "dependency"
	CategoryDownload   Category = "download"
	CategoryAudio      Category = "audio"
	CategoryTagging    Category = "tagging"
	CategoryFilesystem Category = "filesystem"
)

// CategorizedError attaches a Category to an underlying error so callers
// can map failures to exit codes without string matching.
type CategorizedError struct {
	Category Category
	Err      error
}

func (e CategorizedError) Error() string {
	if e.Err == nil {
		return string(e.Category)
	}
	return e.Err.Error()
}

func (e CategorizedError) Unwrap() error { return e.Err }

func wrapCategory(category Category, err error) error {
	if err == nil {
		return nil
	}
	return CategorizedError{Category: category, Err: err}
}

// CategoryOf returns the category carried by err, or "" when err has none.
func CategoryOf(err error) Category {
	var cerr CategorizedError
	if errors.As(err, &cerr) {
		return cerr.Category
	}
	return ""
}

// ExitCode maps an error to the process exit code: 0 for nil, 1 for usage
// errors, 2 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case CategoryOf(err) == CategoryUsage:
		return 1
	default:
		return 2
	}
}

// reportedError marks an error that was already printed, so the caller
// knows not to print it a second time.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// MarkReported wraps an error that has already been surfaced to the user.
func MarkReported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported reports whether err was already surfaced to the user.
func IsReported(err error) bool {
	var rerr *reportedError
	return errors.As(err, &rerr)
}
