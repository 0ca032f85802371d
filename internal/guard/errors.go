// Package guard validates category hierarchy changes, deletes that would
// orphan dependent records, and uniqueness constraints. Every check is a pure
// function over a snapshot read by the caller.
package guard

import (
	"errors"
	"fmt"
)

// Kind is one of the three rejection classes a guard can return.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindInvalidOperation
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidOperation = errors.New("invalid operation")
)

// Reasons carried by Error.
const (
	ReasonParent      = "parent"
	ReasonSelfParent  = "self-parent"
	ReasonCycle       = "cycle"
	ReasonHasChildren = "has-children"
	ReasonHasArticles = "has-articles"
	ReasonInUse       = "in-use"
	ReasonDuplicate   = "duplicate"
	ReasonInactive    = "inactive"
	ReasonMissing     = "missing"
	ReasonInvalid     = "invalid"
)

// Error is a rejected precondition. It matches ErrNotFound, ErrConflict or
// ErrInvalidOperation under errors.Is.
type Error struct {
	Kind    Kind
	Entity  string
	Reason  string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s: %s", e.Entity, e.Kind, e.Reason)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrConflict:
		return e.Kind == KindConflict
	case ErrInvalidOperation:
		return e.Kind == KindInvalidOperation
	}
	return false
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindInvalidOperation:
		return "invalid operation"
	}
	return "unknown"
}

func NotFound(entity, reason, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func Conflict(entity, reason, format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func InvalidOperation(entity, reason, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidOperation, Entity: entity, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ReasonOf returns the reason of a guard error anywhere in err's chain, or "".
func ReasonOf(err error) string {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Reason
	}
	return ""
}
