package remotex

import "fmt"

// ─── Error Kind ───────────────────────────────────────────────────────────────

// ErrorKind identifies which variant of an [Error] is active.
type ErrorKind uint8

const (
	// ErrorKindTransport marks a failure below the application protocol,
	// such as connectivity loss or a timeout.
	ErrorKindTransport ErrorKind = iota
	// ErrorKindCustom marks a failure reported by the application or
	// service layer itself, such as validation or authorization.
	ErrorKindCustom
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindTransport:
		return "transport"
	case ErrorKindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ─── Error ────────────────────────────────────────────────────────────────────

// Error is a two-variant union classifying a failed fetch: either the
// transport below the application protocol failed (payload T), or the
// application layer itself reported a failure (payload C).
//
// Exactly one variant is active. There is no "no error" variant; absence
// of a failure is expressed one level up, by [Response], [Data] or
// [Recyclable] being in a non-failed state.
//
// Keep the union at two kinds: richer failure taxonomies belong inside the
// payload types, not in new variants.
type Error[T, C any] struct {
	kind      ErrorKind
	transport T
	custom    C
}

// TransportError builds the transport variant of [Error].
func TransportError[T, C any](cause T) Error[T, C] {
	return Error[T, C]{kind: ErrorKindTransport, transport: cause}
}

// CustomError builds the custom variant of [Error].
func CustomError[T, C any](cause C) Error[T, C] {
	return Error[T, C]{kind: ErrorKindCustom, custom: cause}
}

// Kind reports which variant is active.
func (e Error[T, C]) Kind() ErrorKind { return e.kind }

// IsTransport reports whether the failure originated below the application
// protocol.
func (e Error[T, C]) IsTransport() bool { return e.kind == ErrorKindTransport }

// IsCustom reports whether the failure was reported by the application
// layer itself.
func (e Error[T, C]) IsCustom() bool { return e.kind == ErrorKindCustom }

// Transport returns the transport payload and whether that variant is active.
func (e Error[T, C]) Transport() (T, bool) {
	if e.kind != ErrorKindTransport {
		var zero T
		return zero, false
	}
	return e.transport, true
}

// Custom returns the custom payload and whether that variant is active.
func (e Error[T, C]) Custom() (C, bool) {
	if e.kind != ErrorKindCustom {
		var zero C
		return zero, false
	}
	return e.custom, true
}

// Error renders the active variant, satisfying the built-in error interface
// so values flow directly into logging and wrapping helpers.
func (e Error[T, C]) Error() string {
	if e.kind == ErrorKindTransport {
		return fmt.Sprintf("transport: %v", e.transport)
	}
	return fmt.Sprintf("custom: %v", e.custom)
}

// mapErrorTransport rewrites the transport payload, leaving a custom
// variant untouched apart from its type parameters.
func mapErrorTransport[T, C, T2 any](e Error[T, C], f func(T) T2) Error[T2, C] {
	if e.kind == ErrorKindTransport {
		return TransportError[T2, C](f(e.transport))
	}
	return CustomError[T2, C](e.custom)
}

// mapErrorCustom rewrites the custom payload, leaving a transport variant
// untouched apart from its type parameters.
func mapErrorCustom[T, C, C2 any](e Error[T, C], f func(C) C2) Error[T, C2] {
	if e.kind == ErrorKindCustom {
		return CustomError[T, C2](f(e.custom))
	}
	return TransportError[T, C2](e.transport)
}

// collapseError extracts the payload of either variant once the payload
// types have been unified.
func collapseError[V any](e Error[V, V]) V {
	if e.kind == ErrorKindTransport {
		return e.transport
	}
	return e.custom
}
