package variant

import (
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"

	"dashkit/internal/classmerge"
)

// Merger combines ordered class lists into one conflict-free class string.
type Merger interface {
	Merge(lists ...string) string
}

// Observer is notified after every resolution. err is nil on success; cached reports
// whether the result came from the memo cache.
type Observer interface {
	Resolved(schema string, cached bool, err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(schema string, cached bool, err error)

// Resolved calls f.
func (f ObserverFunc) Resolved(schema string, cached bool, err error) { f(schema, cached, err) }

// Resolver turns a schema, a selection and caller overrides into a final class string.
// A Resolver is safe for concurrent use.
type Resolver struct {
	merger   Merger
	observer Observer

	mu    sync.Mutex
	cache *lru.Cache
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMerger replaces the class merger.
func WithMerger(m Merger) ResolverOption {
	return func(r *Resolver) {
		if m != nil {
			r.merger = m
		}
	}
}

// WithCache memoises up to size successful resolutions. Errors are never cached.
func WithCache(size int) ResolverOption {
	return func(r *Resolver) {
		if size > 0 {
			r.cache = lru.New(size)
		}
	}
}

// WithObserver installs an observer notified on every resolution.
func WithObserver(o Observer) ResolverOption {
	return func(r *Resolver) { r.observer = o }
}

// NewResolver builds a Resolver backed by the default class merger.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{merger: classmerge.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type cacheKey struct {
	schema    *Schema
	selection string
	overrides string
}

// Resolve concatenates the schema base, the fragment of every axis in declaration order
// and the overrides, then merges them so later classes win per conflict group. It
// returns an *UnknownAxisError or *UnknownOptionError, and no classes, when the
// selection does not fit the schema.
func (r *Resolver) Resolve(s *Schema, sel Selection, overrides ...string) (string, error) {
	chosen, err := s.effective(sel)
	if err != nil {
		r.notify(s.name, false, err)
		return "", err
	}

	var key cacheKey
	if r.cache != nil {
		key = cacheKey{
			schema:    s,
			selection: strings.Join(chosen, "\x00"),
			overrides: strings.Join(overrides, "\x00"),
		}
		r.mu.Lock()
		cached, ok := r.cache.Get(key)
		r.mu.Unlock()
		if ok {
			r.notify(s.name, true, nil)
			return cached.(string), nil
		}
	}

	lists := make([]string, 0, 1+len(s.axes)+len(overrides))
	lists = append(lists, s.base)
	for i, a := range s.axes {
		lists = append(lists, a.fragments[chosen[i]])
	}
	lists = append(lists, overrides...)

	resolved := r.merger.Merge(lists...)

	if r.cache != nil {
		r.mu.Lock()
		r.cache.Add(key, resolved)
		r.mu.Unlock()
	}
	r.notify(s.name, false, nil)
	return resolved, nil
}

// CacheLen reports the number of memoised resolutions.
func (r *Resolver) CacheLen() int {
	if r.cache == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}

func (r *Resolver) notify(schema string, cached bool, err error) {
	if r.observer != nil {
		r.observer.Resolved(schema, cached, err)
	}
}

var (
	defaultMu       sync.RWMutex
	defaultResolver = NewResolver()
)

// Default returns the process-wide resolver used by Schema.Resolve.
func Default() *Resolver {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultResolver
}

// SetDefault installs the process-wide resolver.
func SetDefault(r *Resolver) {
	if r == nil {
		panic("variant: nil resolver provided")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultResolver = r
}
