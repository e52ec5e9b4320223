package fluent

import "time"

// OnRegisterFunc is called after a producer is stored. replaced is true when
// it overwrote an earlier producer for the same key.
type OnRegisterFunc[K comparable] func(key K, replaced bool)

// OnSkipFunc is called when a conditional registration is rejected by its
// predicate.
type OnSkipFunc[K comparable] func(key K)

// OnCreateFunc is called after a producer returns from Create.
type OnCreateFunc[K comparable] func(key K, duration time.Duration)

// OnUnknownKeyFunc is called when Create finds no producer for key, before
// the error is returned.
type OnUnknownKeyFunc[K comparable] func(key K)

// hooks holds all configured hook functions.
type hooks[K comparable] struct {
	onRegister   []OnRegisterFunc[K]
	onSkip       []OnSkipFunc[K]
	onCreate     []OnCreateFunc[K]
	onUnknownKey []OnUnknownKeyFunc[K]
}

// Option configures Factory hooks.
type Option[K comparable] func(*hooks[K])

// WithOnRegister adds a hook called after each registration.
// Multiple hooks are called in order.
//
// Example:
//
//	fluent.WithOnRegister(func(key string, replaced bool) {
//	    if replaced {
//	        logger.Warn("producer replaced", "key", key)
//	    }
//	})
func WithOnRegister[K comparable](fn OnRegisterFunc[K]) Option[K] {
	return func(h *hooks[K]) {
		h.onRegister = append(h.onRegister, fn)
	}
}

// WithOnSkip adds a hook called when RegisterIf rejects a key.
// Multiple hooks are called in order.
func WithOnSkip[K comparable](fn OnSkipFunc[K]) Option[K] {
	return func(h *hooks[K]) {
		h.onSkip = append(h.onSkip, fn)
	}
}

// WithOnCreate adds a hook called after a producer returns.
// Multiple hooks are called in order.
//
// Example:
//
//	fluent.WithOnCreate(func(key string, d time.Duration) {
//	    metrics.Timing("factory.create", d, "key:"+key)
//	})
func WithOnCreate[K comparable](fn OnCreateFunc[K]) Option[K] {
	return func(h *hooks[K]) {
		h.onCreate = append(h.onCreate, fn)
	}
}

// WithOnUnknownKey adds a hook called when Create is asked for a key without
// a producer. The hook observes the failure; Create still returns an error.
// Multiple hooks are called in order.
func WithOnUnknownKey[K comparable](fn OnUnknownKeyFunc[K]) Option[K] {
	return func(h *hooks[K]) {
		h.onUnknownKey = append(h.onUnknownKey, fn)
	}
}

func (h *hooks[K]) callOnRegister(key K, replaced bool) {
	for _, fn := range h.onRegister {
		fn(key, replaced)
	}
}

func (h *hooks[K]) callOnSkip(key K) {
	for _, fn := range h.onSkip {
		fn(key)
	}
}

func (h *hooks[K]) callOnCreate(key K, duration time.Duration) {
	for _, fn := range h.onCreate {
		fn(key, duration)
	}
}

func (h *hooks[K]) callOnUnknownKey(key K) {
	for _, fn := range h.onUnknownKey {
		fn(key)
	}
}
