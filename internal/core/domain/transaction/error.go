package transaction

// Error is the single normalized error kind raised by a Manager. It keeps
// the human-readable message of the failure that triggered it and the
// original cause for errors.Is/As inspection. When a rollback itself
// fails, the rollback error supersedes the original as the cause, since
// it is the more actionable diagnostic.
type Error struct {
	msg   string
	cause error
}

func NewError(msg string, cause error) *Error {
	return &Error{msg: msg, cause: cause}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}
