package catalog

import "net/http"

// Response messages. Clients match on these strings, so they must not change.
const (
	MessageFetched     = "Heroes fetched successfully!"
	MessageNotFound    = "Heroes not found."
	MessageInvalidPage = "Invalid page number! Please enter a number."
	MessageSearchOK    = "ok"
)

// ErrorKind classifies a rejected catalog query.
type ErrorKind int

const (
	// KindNotFound marks a well-formed page number outside the catalog.
	KindNotFound ErrorKind = iota + 1
	// KindInvalidFormat marks a page number that is not a base-10 integer.
	KindInvalidFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}

// QueryError is a validation failure of a catalog query. It carries the
// client-facing message and the HTTP status it is rendered with.
type QueryError struct {
	Kind    ErrorKind
	Message string
	Status  int

	// Err is the underlying cause, if any (e.g. a strconv error).
	Err error
}

// Sentinels for errors.Is. Kind is the only field compared.
var (
	ErrNotFound = &QueryError{
		Kind:    KindNotFound,
		Message: MessageNotFound,
		Status:  http.StatusBadRequest, // 400, not 404: existing clients depend on it
	}
	ErrInvalidFormat = &QueryError{
		Kind:    KindInvalidFormat,
		Message: MessageInvalidPage,
		Status:  http.StatusBadRequest,
	}
)

func (e *QueryError) Error() string {
	return e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a QueryError of the same kind.
func (e *QueryError) Is(target error) bool {
	t, ok := target.(*QueryError)
	return ok && t.Kind == e.Kind
}

// withCause returns a copy of e wrapping cause.
func (e *QueryError) withCause(cause error) *QueryError {
	cp := *e
	cp.Err = cause
	return &cp
}
