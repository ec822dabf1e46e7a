package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure. The string value is the wire code
// returned to clients.
type Kind string

const (
	KindValidation    Kind = "validation_error"
	KindAuthFailed    Kind = "upstream_auth_failed"
	KindUnreachable   Kind = "upstream_unreachable"
	KindNotJSON       Kind = "response_not_json"
	KindSchemaInvalid Kind = "response_schema_invalid"
)

// Error is a classified gateway failure.
type Error struct {
	Kind Kind
	Err  error
}

// Sentinels for errors.Is matching by kind.
var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrAuthFailed    = &Error{Kind: KindAuthFailed}
	ErrUnreachable   = &Error{Kind: KindUnreachable}
	ErrNotJSON       = &Error{Kind: KindNotJSON}
	ErrSchemaInvalid = &Error{Kind: KindSchemaInvalid}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of a gateway error, or "" for anything else.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return ""
}

// kindFromCode maps a wire code back to a kind. Unknown codes are treated
// as an unreachable upstream.
func kindFromCode(code string) Kind {
	switch k := Kind(code); k {
	case KindValidation, KindAuthFailed, KindUnreachable, KindNotJSON, KindSchemaInvalid:
		return k
	default:
		return KindUnreachable
	}
}
