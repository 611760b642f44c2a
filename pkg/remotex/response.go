package remotex

// ─── Result ───────────────────────────────────────────────────────────────────

// Result is one level of outcome: a value of type A or an error of type E.
// Transport clients produce two nested levels of it, the outer for the wire
// call and the inner for the application-level decode, and
// [FromNestedResult] flattens the pair into a [Response].
type Result[E, A any] struct {
	value A
	err   E
	ok    bool
}

// Ok builds a successful [Result].
func Ok[E, A any](value A) Result[E, A] {
	return Result[E, A]{value: value, ok: true}
}

// Err builds a failed [Result].
func Err[E, A any](err E) Result[E, A] {
	return Result[E, A]{err: err}
}

// IsOk reports whether the result carries a value.
func (r Result[E, A]) IsOk() bool { return r.ok }

// IsErr reports whether the result carries an error.
func (r Result[E, A]) IsErr() bool { return !r.ok }

// Value returns the value and whether the result is Ok.
func (r Result[E, A]) Value() (A, bool) { return r.value, r.ok }

// Err returns the error and whether the result is Err.
func (r Result[E, A]) Err() (E, bool) { return r.err, !r.ok }

// ─── Response ─────────────────────────────────────────────────────────────────

// Response is the outcome of one completed fetch attempt: a success value
// or an [Error]. It exists to unify the two failure levels of a transport
// call into a single union that the lifecycle types consume.
//
// The zero value is Success of V's zero value; build real responses with
// the constructors or [FromNestedResult].
type Response[T, C, V any] struct {
	value  V
	err    Error[T, C]
	failed bool
}

// Success builds a successful [Response].
func Success[T, C, V any](value V) Response[T, C, V] {
	return Response[T, C, V]{value: value}
}

// Failure builds a failed [Response] from an already-classified [Error].
func Failure[T, C, V any](err Error[T, C]) Response[T, C, V] {
	return Response[T, C, V]{err: err, failed: true}
}

// TransportFailure builds a failed [Response] with a transport cause.
func TransportFailure[T, C, V any](cause T) Response[T, C, V] {
	return Failure[T, C, V](TransportError[T, C](cause))
}

// CustomFailure builds a failed [Response] with an application cause.
func CustomFailure[T, C, V any](cause C) Response[T, C, V] {
	return Failure[T, C, V](CustomError[T, C](cause))
}

// FromNestedResult flattens a two-level outcome into a [Response]:
//
//	Err(t)     -> Failure(Transport(t))
//	Ok(Err(c)) -> Failure(Custom(c))
//	Ok(Ok(v))  -> Success(v)
//
// The outer level is the wire call, the inner level the application decode
// or server-reported result. Total: every input maps to a Response.
func FromNestedResult[T, C, V any](outer Result[T, Result[C, V]]) Response[T, C, V] {
	if !outer.ok {
		return TransportFailure[T, C, V](outer.err)
	}
	inner := outer.value
	if !inner.ok {
		return CustomFailure[T, C, V](inner.err)
	}
	return Success[T, C, V](inner.value)
}

// IsSuccess reports whether the response carries a value.
func (r Response[T, C, V]) IsSuccess() bool { return !r.failed }

// IsFailure reports whether the response carries an error.
func (r Response[T, C, V]) IsFailure() bool { return r.failed }

// IsTransportError reports whether the response failed below the
// application protocol.
func (r Response[T, C, V]) IsTransportError() bool {
	return r.failed && r.err.IsTransport()
}

// IsCustomError reports whether the response failed at the application
// layer.
func (r Response[T, C, V]) IsCustomError() bool {
	return r.failed && r.err.IsCustom()
}

// Value returns the success payload and whether the response succeeded.
// Lossy: the failure reason, if any, is discarded. Prefer switching on the
// predicates when the caller must react to failures.
func (r Response[T, C, V]) Value() (V, bool) {
	if r.failed {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Err returns the error and whether the response failed. Lossy in the
// other direction: the success payload, if any, is discarded.
func (r Response[T, C, V]) Err() (Error[T, C], bool) {
	if !r.failed {
		return Error[T, C]{}, false
	}
	return r.err, true
}

// WithDefault returns the success payload, or fallback when the response
// failed. Lossy: use only when the failure reason does not matter.
func (r Response[T, C, V]) WithDefault(fallback V) V {
	if r.failed {
		return fallback
	}
	return r.value
}

// ─── Transformations ──────────────────────────────────────────────────────────

// MapResponse applies f to the success payload. Failures pass through with
// the error untouched.
func MapResponse[T, C, V, W any](r Response[T, C, V], f func(V) W) Response[T, C, W] {
	if r.failed {
		return Failure[T, C, W](r.err)
	}
	return Success[T, C, W](f(r.value))
}

// MapResponseTransport applies f to the transport payload of a failed
// response. Successes and custom failures pass through unchanged.
func MapResponseTransport[T, C, V, T2 any](r Response[T, C, V], f func(T) T2) Response[T2, C, V] {
	if !r.failed {
		return Success[T2, C, V](r.value)
	}
	return Failure[T2, C, V](mapErrorTransport(r.err, f))
}

// MapResponseCustom applies f to the custom payload of a failed response.
// Successes and transport failures pass through unchanged.
func MapResponseCustom[T, C, V, C2 any](r Response[T, C, V], f func(C) C2) Response[T, C2, V] {
	if !r.failed {
		return Success[T, C2, V](r.value)
	}
	return Failure[T, C2, V](mapErrorCustom(r.err, f))
}

// MapResponseErrors applies f to the whole [Error] of a failed response.
// Successes pass through unchanged.
func MapResponseErrors[T, C, V, T2, C2 any](r Response[T, C, V], f func(Error[T, C]) Error[T2, C2]) Response[T2, C2, V] {
	if !r.failed {
		return Success[T2, C2, V](r.value)
	}
	return Failure[T2, C2, V](f(r.err))
}

// CollapseResponse extracts the single payload of a response whose three
// type parameters have been unified, whichever variant holds it.
func CollapseResponse[V any](r Response[V, V, V]) V {
	if r.failed {
		return collapseError(r.err)
	}
	return r.value
}
