package remotex

// ─── Phase / Stage ────────────────────────────────────────────────────────────

// Phase identifies the lifecycle state of a [Recyclable] value.
type Phase uint8

const (
	// PhaseNeverAsked means no fetch has been dispatched yet.
	PhaseNeverAsked Phase = iota
	// PhaseLoading means the first fetch is in flight and nothing has been
	// retained yet.
	PhaseLoading
	// PhaseFailure means the first fetch failed before anything was
	// retained.
	PhaseFailure
	// PhaseReady means the last fetch succeeded and no reload is in
	// flight.
	PhaseReady
	// PhaseRecycling means a value is retained while a reload is in flight
	// or has just failed; the [Stage] tells which.
	PhaseRecycling
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNeverAsked:
		return "never_asked"
	case PhaseLoading:
		return "loading"
	case PhaseFailure:
		return "failure"
	case PhaseReady:
		return "ready"
	case PhaseRecycling:
		return "recycling"
	default:
		return "unknown"
	}
}

// Stage identifies the sub-state of a recycling [Recyclable]: the shape the
// lifecycle would be in if nothing were retained. It exists so the retained
// value does not force a duplicate of the whole outer state set.
type Stage uint8

const (
	// StageLoading means the reload is still in flight.
	StageLoading Stage = iota
	// StageFailure means the reload completed with an error.
	StageFailure
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ─── Recyclable ───────────────────────────────────────────────────────────────

// Recyclable models the fetch lifecycle of a single resource while
// retaining the last successfully fetched value across later reloads and
// failures, so a UI never has to blank out known-good data just because a
// refresh started.
//
// Before the first success the states mirror [Data]: NeverAsked, Loading,
// Failure. From the first success onward the value is retained: Ready
// holds it with nothing in flight, and Recycling holds it alongside a
// [Stage] describing the reload (in flight, or failed).
//
// The zero value is NeverAsked. Values are immutable; the two transitions,
// [Recyclable.ToLoading] and [Recyclable.MergeResponse], return new values
// and are total over every state and input.
type Recyclable[T, C, V any] struct {
	phase Phase
	stage Stage
	value V
	err   Error[T, C]
}

// NeverAsked builds a [Recyclable] for a resource nobody has requested yet.
func NeverAsked[T, C, V any]() Recyclable[T, C, V] {
	return Recyclable[T, C, V]{}
}

// FirstLoading builds a [Recyclable] whose first fetch is already in
// flight, for models that dispatch a request as soon as they are created.
func FirstLoading[T, C, V any]() Recyclable[T, C, V] {
	return Recyclable[T, C, V]{phase: PhaseLoading}
}

// RecyclableFromResponse starts a fresh lifecycle from a completed fetch:
// Success(v) -> Ready(v), Failure(e) -> Failure(e). It never produces
// Recycling because there is no prior state to retain from. Use it when the
// identity of the fetched resource changes; use [Recyclable.MergeResponse]
// to fold a response into an existing lifecycle.
func RecyclableFromResponse[T, C, V any](r Response[T, C, V]) Recyclable[T, C, V] {
	if r.failed {
		return Recyclable[T, C, V]{phase: PhaseFailure, err: r.err}
	}
	return Recyclable[T, C, V]{phase: PhaseReady, value: r.value}
}

// ─── Transitions ──────────────────────────────────────────────────────────────

// ToLoading is the transition for "a new fetch was dispatched":
//
//	NeverAsked       -> Loading
//	Loading          -> Loading
//	Failure(_)       -> Loading
//	Ready(v)         -> Recycling(v, StageLoading)
//	Recycling(v, _)  -> Recycling(v, StageLoading)
//
// Once a value has been retained it stays retained through every future
// loading transition; before that, loading collapses to the bare Loading.
// Idempotent on Loading and on Recycling(v, StageLoading).
func (r Recyclable[T, C, V]) ToLoading() Recyclable[T, C, V] {
	switch r.phase {
	case PhaseReady, PhaseRecycling:
		return Recyclable[T, C, V]{phase: PhaseRecycling, stage: StageLoading, value: r.value}
	default:
		return Recyclable[T, C, V]{phase: PhaseLoading}
	}
}

// MergeResponse is the transition for "the fetch completed":
//
//	any state                       + Success(v2) -> Ready(v2)
//	NeverAsked / Loading / Failure  + Failure(e)  -> Failure(e)
//	Ready(v) / Recycling(v, _)      + Failure(e)  -> Recycling(v, StageFailure(e))
//
// A fresh success replaces any retained value outright; only one value is
// ever retained. A failure keeps whatever value was already retained.
func (r Recyclable[T, C, V]) MergeResponse(resp Response[T, C, V]) Recyclable[T, C, V] {
	if !resp.failed {
		return Recyclable[T, C, V]{phase: PhaseReady, value: resp.value}
	}
	switch r.phase {
	case PhaseReady, PhaseRecycling:
		return Recyclable[T, C, V]{phase: PhaseRecycling, stage: StageFailure, value: r.value, err: resp.err}
	default:
		return Recyclable[T, C, V]{phase: PhaseFailure, err: resp.err}
	}
}

// ─── Queries ──────────────────────────────────────────────────────────────────

// Phase reports the current lifecycle state.
func (r Recyclable[T, C, V]) Phase() Phase { return r.phase }

// Stage returns the recycling sub-state and whether the phase is Recycling.
func (r Recyclable[T, C, V]) Stage() (Stage, bool) {
	if r.phase != PhaseRecycling {
		return 0, false
	}
	return r.stage, true
}

// IsNeverAsked reports whether no fetch has been dispatched.
func (r Recyclable[T, C, V]) IsNeverAsked() bool { return r.phase == PhaseNeverAsked }

// IsLoading reports whether a fetch is in flight, first or reload.
func (r Recyclable[T, C, V]) IsLoading() bool {
	return r.phase == PhaseLoading ||
		(r.phase == PhaseRecycling && r.stage == StageLoading)
}

// IsReady reports whether the state is exactly Ready: settled on a success
// with no reload in flight. False for Recycling even though a value is
// retained there.
func (r Recyclable[T, C, V]) IsReady() bool { return r.phase == PhaseReady }

// IsError reports whether the latest completed fetch failed, whether or
// not a value is retained from before.
func (r Recyclable[T, C, V]) IsError() bool {
	return r.phase == PhaseFailure ||
		(r.phase == PhaseRecycling && r.stage == StageFailure)
}

// IsTransportError reports whether the latest failure was below the
// application protocol.
func (r Recyclable[T, C, V]) IsTransportError() bool {
	return r.IsError() && r.err.IsTransport()
}

// IsCustomError reports whether the latest failure came from the
// application layer.
func (r Recyclable[T, C, V]) IsCustomError() bool {
	return r.IsError() && r.err.IsCustom()
}

// Value returns the retained value and whether one is present, in Ready as
// well as both Recycling shapes. Use [Recyclable.WithDefault] when only a
// settled success should count.
func (r Recyclable[T, C, V]) Value() (V, bool) {
	if r.phase != PhaseReady && r.phase != PhaseRecycling {
		var zero V
		return zero, false
	}
	return r.value, true
}

// Err returns the latest failure and whether one is present: the bare
// Failure and Recycling(_, StageFailure) shapes. Loading shapes and
// NeverAsked report false.
func (r Recyclable[T, C, V]) Err() (Error[T, C], bool) {
	if !r.IsError() {
		return Error[T, C]{}, false
	}
	return r.err, true
}

// WithDefault returns the value of a Ready state, or fallback for every
// other state. Stricter than [Recyclable.Value]: a value retained inside
// Recycling does not count, because the state is not a settled success.
func (r Recyclable[T, C, V]) WithDefault(fallback V) V {
	if r.phase != PhaseReady {
		return fallback
	}
	return r.value
}

// ─── Transformations ──────────────────────────────────────────────────────────

// MapRecyclable applies f to the retained value inside Ready and both
// Recycling shapes. States without a value pass through unchanged.
func MapRecyclable[T, C, V, W any](r Recyclable[T, C, V], f func(V) W) Recyclable[T, C, W] {
	out := Recyclable[T, C, W]{phase: r.phase, stage: r.stage, err: r.err}
	if r.phase == PhaseReady || r.phase == PhaseRecycling {
		out.value = f(r.value)
	}
	return out
}

// MapRecyclableTransport applies f to the transport payload of the bare
// Failure and Recycling(_, StageFailure) shapes. The retained value, if
// any, is untouched; every other shape passes through unchanged.
func MapRecyclableTransport[T, C, V, T2 any](r Recyclable[T, C, V], f func(T) T2) Recyclable[T2, C, V] {
	out := Recyclable[T2, C, V]{phase: r.phase, stage: r.stage, value: r.value}
	if r.IsError() {
		out.err = mapErrorTransport(r.err, f)
	}
	return out
}

// MapRecyclableCustom applies f to the custom payload of the bare Failure
// and Recycling(_, StageFailure) shapes. The retained value, if any, is
// untouched; every other shape passes through unchanged.
func MapRecyclableCustom[T, C, V, C2 any](r Recyclable[T, C, V], f func(C) C2) Recyclable[T, C2, V] {
	out := Recyclable[T, C2, V]{phase: r.phase, stage: r.stage, value: r.value}
	if r.IsError() {
		out.err = mapErrorCustom(r.err, f)
	}
	return out
}

// MapRecyclableErrors applies f to the whole [Error] of the bare Failure
// and Recycling(_, StageFailure) shapes. The retained value, if any, is
// untouched; every other shape passes through unchanged.
func MapRecyclableErrors[T, C, V, T2, C2 any](r Recyclable[T, C, V], f func(Error[T, C]) Error[T2, C2]) Recyclable[T2, C2, V] {
	out := Recyclable[T2, C2, V]{phase: r.phase, stage: r.stage, value: r.value}
	if r.IsError() {
		out.err = f(r.err)
	}
	return out
}

// CollapseRecyclable extracts the payload of a settled success or of any
// failure once the three type parameters have been unified: Ready returns
// its value, the bare Failure and Recycling(_, StageFailure) return the
// failure payload, and NeverAsked and both loading shapes return fallback.
func CollapseRecyclable[V any](r Recyclable[V, V, V], fallback V) V {
	switch {
	case r.phase == PhaseReady:
		return r.value
	case r.IsError():
		return collapseError(r.err)
	default:
		return fallback
	}
}
