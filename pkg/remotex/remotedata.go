package remotex

// ─── Status ───────────────────────────────────────────────────────────────────

// Status identifies the lifecycle state of a [Data] value.
type Status uint8

const (
	// StatusNotAsked means no fetch has been dispatched yet.
	StatusNotAsked Status = iota
	// StatusLoading means a fetch is in flight.
	StatusLoading
	// StatusFailure means the fetch completed with an error.
	StatusFailure
	// StatusSuccess means the fetch completed with a value.
	StatusSuccess
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNotAsked:
		return "not_asked"
	case StatusLoading:
		return "loading"
	case StatusFailure:
		return "failure"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ─── Data ─────────────────────────────────────────────────────────────────────

// Data models the fetch lifecycle of a single resource with no memory of
// previously fetched values: NotAsked, Loading, Failure or Success. UI code
// switches on [Data.Status] and renders each state explicitly instead of
// juggling isLoading/error/data flags.
//
// The zero value is NotAsked. Failure and Success are reached only by
// consuming a completed [Response] via [DataFromResponse]; there is no
// transition out of them within this type. A caller starting a new fetch
// replaces the cell with a fresh [Loading] value. When stale data should
// survive a reload, use [Recyclable] instead.
type Data[T, C, V any] struct {
	status Status
	value  V
	err    Error[T, C]
}

// NotAsked builds a [Data] for a resource nobody has requested yet.
func NotAsked[T, C, V any]() Data[T, C, V] {
	return Data[T, C, V]{}
}

// Loading builds a [Data] for a resource whose fetch is in flight.
func Loading[T, C, V any]() Data[T, C, V] {
	return Data[T, C, V]{status: StatusLoading}
}

// DataFromResponse converts a completed fetch outcome into its terminal
// lifecycle state: Success(v) -> Success, Failure(e) -> Failure. Total.
func DataFromResponse[T, C, V any](r Response[T, C, V]) Data[T, C, V] {
	if r.failed {
		return Data[T, C, V]{status: StatusFailure, err: r.err}
	}
	return Data[T, C, V]{status: StatusSuccess, value: r.value}
}

// Status reports the current lifecycle state.
func (d Data[T, C, V]) Status() Status { return d.status }

// IsNotAsked reports whether no fetch has been dispatched.
func (d Data[T, C, V]) IsNotAsked() bool { return d.status == StatusNotAsked }

// IsLoading reports whether a fetch is in flight.
func (d Data[T, C, V]) IsLoading() bool { return d.status == StatusLoading }

// IsSuccess reports whether the fetch completed with a value.
func (d Data[T, C, V]) IsSuccess() bool { return d.status == StatusSuccess }

// IsError reports whether the fetch completed with an error of either kind.
func (d Data[T, C, V]) IsError() bool { return d.status == StatusFailure }

// IsTransportError reports whether the fetch failed below the application
// protocol.
func (d Data[T, C, V]) IsTransportError() bool {
	return d.status == StatusFailure && d.err.IsTransport()
}

// IsCustomError reports whether the fetch failed at the application layer.
func (d Data[T, C, V]) IsCustomError() bool {
	return d.status == StatusFailure && d.err.IsCustom()
}

// Value returns the fetched payload and whether the state is Success.
// Lossy: NotAsked, Loading and Failure all collapse to false.
func (d Data[T, C, V]) Value() (V, bool) {
	if d.status != StatusSuccess {
		var zero V
		return zero, false
	}
	return d.value, true
}

// Err returns the error and whether the state is Failure. Lossy: NotAsked
// and Loading collapse to false just like Success.
func (d Data[T, C, V]) Err() (Error[T, C], bool) {
	if d.status != StatusFailure {
		return Error[T, C]{}, false
	}
	return d.err, true
}

// WithDefault returns the fetched payload, or fallback in every other
// state. Lossy: use only when "not here yet" and "failed" may render the
// same way.
func (d Data[T, C, V]) WithDefault(fallback V) V {
	if d.status != StatusSuccess {
		return fallback
	}
	return d.value
}

// ─── Transformations ──────────────────────────────────────────────────────────

// MapData applies f to the payload of a Success. Every other state passes
// through unchanged.
func MapData[T, C, V, W any](d Data[T, C, V], f func(V) W) Data[T, C, W] {
	out := Data[T, C, W]{status: d.status, err: d.err}
	if d.status == StatusSuccess {
		out.value = f(d.value)
	}
	return out
}

// MapDataTransport applies f to the transport payload of a Failure. Every
// other shape, the custom failure included, passes through unchanged.
func MapDataTransport[T, C, V, T2 any](d Data[T, C, V], f func(T) T2) Data[T2, C, V] {
	out := Data[T2, C, V]{status: d.status, value: d.value}
	if d.status == StatusFailure {
		out.err = mapErrorTransport(d.err, f)
	}
	return out
}

// MapDataCustom applies f to the custom payload of a Failure. Every other
// shape, the transport failure included, passes through unchanged.
func MapDataCustom[T, C, V, C2 any](d Data[T, C, V], f func(C) C2) Data[T, C2, V] {
	out := Data[T, C2, V]{status: d.status, value: d.value}
	if d.status == StatusFailure {
		out.err = mapErrorCustom(d.err, f)
	}
	return out
}

// MapDataErrors applies f to the whole [Error] of a Failure. Every other
// state passes through unchanged.
func MapDataErrors[T, C, V, T2, C2 any](d Data[T, C, V], f func(Error[T, C]) Error[T2, C2]) Data[T2, C2, V] {
	out := Data[T2, C2, V]{status: d.status, value: d.value}
	if d.status == StatusFailure {
		out.err = f(d.err)
	}
	return out
}

// CollapseData extracts the single payload of a Success or Failure once
// the three type parameters have been unified, and returns fallback for
// NotAsked and Loading.
func CollapseData[V any](d Data[V, V, V], fallback V) V {
	switch d.status {
	case StatusSuccess:
		return d.value
	case StatusFailure:
		return collapseError(d.err)
	default:
		return fallback
	}
}
