package variant

import "context"

// Handler handles one alternative in a Match call. It receives the held
// payload (the Unit marker for payload-less alternatives) and its result and
// error are returned from Match unchanged. A handler registered under
// CatchAll receives a nil payload, since it cannot know which alternative it
// is handling; use Value.Unwrap inside the handler if it needs the data.
type Handler func(payload any) (any, error)

// Handlers maps alternative names to handlers for Match. A mapping should
// either cover every alternative the value's schema declares or supply a
// fallback under the CatchAll key; a value whose alternative is covered by
// neither fails the Match.
type Handlers map[string]Handler

// ContextHandler is the context-aware counterpart of Handler, used with
// MatchContext for handlers that block or perform cancellable work.
type ContextHandler func(ctx context.Context, payload any) (any, error)

// ContextHandlers maps alternative names to context-aware handlers for
// MatchContext, with the same coverage contract as Handlers.
type ContextHandlers map[string]ContextHandler

// Match dispatches on the held alternative: the handler registered under
// Key() runs with the payload; failing that, the CatchAll handler runs with
// a nil payload; failing both, Match fails with a KindNoHandler error naming
// the held alternative. Exactly one handler runs per call, synchronously,
// and its result and error are returned unchanged.
func (v *Value) Match(handlers Handlers) (any, error) {
	if h, ok := handlers[v.key]; ok {
		return h(v.payload)
	}
	if h, ok := handlers[CatchAll]; ok {
		return h(nil)
	}
	return nil, newNoHandlerError("Value.Match", v.key)
}

// MatchContext dispatches exactly like Match but with context-aware handlers
// that may block. Handler selection is synchronous and deterministic: the
// no-handler check and the context liveness check both happen before any
// handler runs. A context already cancelled at dispatch time returns
// ctx.Err() without invoking anything; once a handler runs, its result and
// error, including cancellation errors from its own context use, are
// propagated unchanged.
func (v *Value) MatchContext(ctx context.Context, handlers ContextHandlers) (any, error) {
	h, payload, ok := v.selectContextHandler(handlers)
	if !ok {
		return nil, newNoHandlerError("Value.MatchContext", v.key)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return h(ctx, payload)
}

// selectContextHandler applies the dispatch rule without running anything:
// exact alternative first, then catch-all with a nil payload.
func (v *Value) selectContextHandler(handlers ContextHandlers) (ContextHandler, any, bool) {
	if h, ok := handlers[v.key]; ok {
		return h, v.payload, true
	}
	if h, ok := handlers[CatchAll]; ok {
		return h, nil, true
	}
	return nil, nil, false
}
