// Package remotex models the lifecycle of asynchronously fetched data as
// small immutable state machines, replacing loose isLoading/error/data flag
// combinations with closed sets of named states that callers switch over
// exhaustively.
//
// The package owns no transport, scheduler or rendering code. A fetch is
// performed elsewhere; remotex only names the states the fetched resource
// can be in, and defines total transition rules between them. Every
// operation is a pure function over immutable values: nothing here blocks,
// fails or mutates in place.
//
// # Errors and Responses
//
// [Error] classifies a failed fetch into exactly two kinds: a transport
// failure from below the application protocol (payload type T), or a
// custom failure reported by the application layer itself (payload type C).
// Everything above treats the error as opaque until the caller asks which
// kind it was.
//
// [Response] is the outcome of one completed fetch attempt, either a
// success value or an [Error]. Transport clients usually produce two
// nested outcome levels, the wire call wrapping the application decode;
// [FromNestedResult] flattens the pair:
//
//	resp := remotex.FromNestedResult(remotex.Ok[error](
//	    remotex.Ok[*errx.Error](user),
//	))
//	// resp is Success(user); an outer Err gives Failure(Transport),
//	// an inner Err gives Failure(Custom).
//
// # Remote Data
//
// [Data] is the four-state lifecycle for a resource with no memory of
// prior fetches: NotAsked, Loading, Failure or Success. The zero value is
// NotAsked. Terminal states are reached only by consuming a [Response]
// with [DataFromResponse]; starting a new fetch means replacing the cell
// with a fresh [Loading] value.
//
//	cell := remotex.Loading[error, *errx.Error, User]()
//	// ... fetch completes ...
//	cell = remotex.DataFromResponse(resp)
//
//	switch cell.Status() {
//	case remotex.StatusNotAsked:
//	    // render idle
//	case remotex.StatusLoading:
//	    // render spinner
//	case remotex.StatusFailure:
//	    // render error
//	case remotex.StatusSuccess:
//	    // render value
//	}
//
// # Recyclable Data
//
// [Recyclable] extends the lifecycle with value retention: once a fetch
// has succeeded, later reloads and failures keep the last good value
// visible instead of discarding it. Before the first success the states
// mirror [Data] (NeverAsked, Loading, Failure); afterwards the value lives
// in Ready, or in Recycling together with a [Stage] describing the reload.
//
// Two total transitions drive it. [Recyclable.ToLoading] records that a
// fetch was dispatched and [Recyclable.MergeResponse] folds in the
// completed outcome:
//
//	cell := remotex.NeverAsked[error, *errx.Error, Quote]()
//	cell = cell.ToLoading()              // Loading
//	cell = cell.MergeResponse(okResp)    // Ready(quote)
//	cell = cell.ToLoading()              // Recycling(quote, StageLoading)
//	cell = cell.MergeResponse(failResp)  // Recycling(quote, StageFailure)
//
// The retained quote stays readable through the whole reload; a fresh
// success replaces it outright.
//
// # Keyed Stores
//
// [Store] applies the Recyclable transitions to values held under keys,
// one entry per resource. An absent key reads as NeverAsked and a write
// that reverts an entry to NeverAsked deletes the key, so the map only
// holds resources with at least one fetch attempt. The store is safe for
// concurrent use and can report every write through [WithHook]:
//
//	store := remotex.NewStore[string, error, *errx.Error, Quote](
//	    remotex.WithHook(func(ev remotex.Event) {
//	        logx.WithField("key", ev.Key).Debug(string(ev.Kind))
//	    }),
//	)
//	store.ToLoading("EURUSD")
//	store.MergeResponse("EURUSD", resp)
//
// # Lossy Projections
//
// WithDefault, Value, Err and the boolean predicates collapse a four to
// six state union into a bool or a single payload. They are escape hatches
// for call sites that genuinely do not care which state produced the
// answer, not the primary read path: prefer switching over [Data.Status]
// or [Recyclable.Phase] so every state is handled somewhere visible.
// [Recyclable.WithDefault] in particular only honors a settled Ready; a
// value retained inside Recycling comes back from [Recyclable.Value], not
// from WithDefault.
//
// # Design Notes
//
// All types have value semantics and normalized representations, so two
// equal lifecycles compare equal with == when the payload types are
// comparable. Transitions are total: every state and input pair maps to
// exactly one output state, and no operation in the package can itself
// fail. The package tracks neither time nor in-flight requests; if two
// fetches race for one cell, the last MergeResponse wins. Callers needing
// ordering must sequence requests themselves.
//
// The package has no external dependencies and relies solely on the Go
// standard library.
package remotex
