package query

import (
	"cmp"
	"strings"
	"time"
)

// Eq matches records whose field equals v.
func Eq[T any, V comparable](field func(T) V, v V) Filter[T] {
	return func(r T) bool {
		return field(r) == v
	}
}

// EqPtr matches records whose optional field is set and equals v.
func EqPtr[T any, V comparable](field func(T) *V, v V) Filter[T] {
	return func(r T) bool {
		p := field(r)
		return p != nil && *p == v
	}
}

// IsNil matches records whose optional field is unset.
func IsNil[T any, V any](field func(T) *V) Filter[T] {
	return func(r T) bool {
		return field(r) == nil
	}
}

// Between matches records whose time field lies in [from, to]. A nil bound is
// open.
func Between[T any](field func(T) time.Time, from, to *time.Time) Filter[T] {
	return func(r T) bool {
		t := field(r)
		if from != nil && t.Before(*from) {
			return false
		}
		if to != nil && t.After(*to) {
			return false
		}
		return true
	}
}

// By orders records by an ordered field.
func By[T any, V cmp.Ordered](field func(T) V) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(field(a), field(b))
	}
}

// ByFold orders records by a text field, ignoring case.
func ByFold[T any](field func(T) string) Compare[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

// ByPtr orders records by an optional ordered field; unset values sort first.
func ByPtr[T any, V cmp.Ordered](field func(T) *V) Compare[T] {
	return func(a, b T) int {
		pa, pb := field(a), field(b)
		switch {
		case pa == nil && pb == nil:
			return 0
		case pa == nil:
			return -1
		case pb == nil:
			return 1
		}
		return cmp.Compare(*pa, *pb)
	}
}

// ByBool orders false before true.
func ByBool[T any](field func(T) bool) Compare[T] {
	return func(a, b T) int {
		va, vb := field(a), field(b)
		switch {
		case va == vb:
			return 0
		case !va:
			return -1
		}
		return 1
	}
}

// ByTime orders records by a time field.
func ByTime[T any](field func(T) time.Time) Compare[T] {
	return func(a, b T) int {
		return field(a).Compare(field(b))
	}
}

// ByTimePtr orders records by an optional time field; unset values sort first.
func ByTimePtr[T any](field func(T) *time.Time) Compare[T] {
	return func(a, b T) int {
		ta, tb := field(a), field(b)
		switch {
		case ta == nil && tb == nil:
			return 0
		case ta == nil:
			return -1
		case tb == nil:
			return 1
		}
		return ta.Compare(*tb)
	}
}

// Deref returns the value behind an optional text field, or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
