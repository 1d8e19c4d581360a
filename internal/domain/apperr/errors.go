package apperr

import "errors"

type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindStorage      Kind = "storage"
	KindEmbedding    Kind = "embedding"
	KindNotification Kind = "notification"
)

// Error carries a kind so adapters can map it without knowing every domain error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg == "" {
			return e.Err.Error()
		}
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches kind sentinels (empty Msg) by kind, and other targets by kind+message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Msg == "" && t.Err == nil {
		return t.Kind == e.Kind
	}
	return t.Kind == e.Kind && t.Msg == e.Msg && t.Err == nil
}

// kind sentinels, for errors.Is(err, apperr.ErrConflict)
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrStorage      = &Error{Kind: KindStorage}
	ErrEmbedding    = &Error{Kind: KindEmbedding}
	ErrNotification = &Error{Kind: KindNotification}
)

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Validation(msg string) *Error { return New(KindValidation, msg) }
func Conflict(msg string) *Error   { return New(KindConflict, msg) }
func NotFound(msg string) *Error   { return New(KindNotFound, msg) }
func Forbidden(msg string) *Error  { return New(KindForbidden, msg) }

// Storage wraps a failed mutation/query, keeping the cause text.
func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Msg: op, Err: err}
}

// AsStorage passes an *Error through and wraps anything else as storage.
func AsStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return Storage(op, err)
}

func Embedding(op string, err error) *Error {
	return &Error{Kind: KindEmbedding, Msg: op, Err: err}
}

// KindOf returns the kind of the first *Error in the chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
